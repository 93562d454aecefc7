// Package requirement parses single Python dependency specifiers.
//
// # Overview
//
// A specifier is one line of a requirements file or one entry of a
// setup.py install_requires list. [Parse] understands the shapes pip
// accepts in those places:
//
//   - <name>
//   - <name><comparator><version>[,<comparator><version>...]
//   - <vcs_url>[#egg=<name>]
//   - <archive_url>[#egg=<name>]
//   - <path_to_dir>
//   - (-e|--editable) <path_or_vcs_url>[#egg=<name>]
//   - <name> @ <url>
//
// Inline comments must be separated from the specifier by whitespace, so
// that "#egg=" URL fragments survive. Environment markers (everything after
// ";") are discarded, not evaluated.
//
// Lines that cannot be interpreted yield nil rather than an error: one bad
// line never invalidates the file it came from.
//
// # Example
//
//	req := requirement.Parse("celery == 0.1 # pinned", "requirements.txt")
//	fmt.Println(req.Name(), req.VersionSpecs()) // celery [==0.1]
//
//	out, _ := req.PipFormat() // "celery==0.1"
package requirement
