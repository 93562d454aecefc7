// Package io writes detected requirements in machine-readable formats.
//
// # Formats
//
// [FormatRequirementsFile] writes one pip-style line per requirement, the
// same form a requirements.txt would use:
//
//	Django==1.5.0
//	git+https://github.com/x/y.git#egg=y
//
// [FormatJSON] writes an indented JSON array:
//
//	[
//	  {
//	    "name": "Django",
//	    "version_specs": [{"comparator": "==", "version": "1.5.0"}],
//	    "location": "setup.py"
//	  }
//	]
//
// Use [Write] for any io.Writer or [Export] to write a file.
package io
