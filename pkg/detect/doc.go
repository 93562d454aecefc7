// Package detect finds the requirements of a Python project by inspecting
// the places they are conventionally declared.
//
// # Sources
//
// [FindRequirements] tries, in order:
//
//  1. setup.py at the root, read statically by [setuppy]. A successful read
//     is returned immediately.
//  2. pyproject.toml at the root: Poetry dependency tables, or PEP 621
//     project.dependencies. Returned immediately when non-empty.
//  3. requirements.txt and requirements.pip at the root.
//  4. Every .txt and .pip file in a requirements/ directory.
//  5. Loose files such as dev_reqs.txt or requirements_docs.txt, excluding
//     names that start or end with "test".
//
// Results from 3 to 5 are merged, deduplicated and sorted by name. When
// nothing is found the error has code REQUIREMENTS_NOT_FOUND.
//
// # Locators
//
// Each source is a [Locator]; they can also be used on their own:
//
//	reqs, err := detect.Pyproject{}.Find(ctx, "path/to/project", detect.Options{})
//
// A locator whose file is absent returns a REQUIREMENTS_NOT_FOUND error. A
// file that exists but cannot be interpreted yields COULD_NOT_PARSE.
package detect
