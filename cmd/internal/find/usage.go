package find

import (
	cmdutil "github.com/MaTriXy/just-bash/cmd/util"
)

// Usage returns find's usage string.
func Usage() string {
	u := ""
	u += "Recursively descends the directory tree of the search path, evaluating an\n"
	u += "expression composed of predicates and operators for each entry in the tree,\n"
	u += "and then performs the registered actions on the matches.\n"
	u += "\n"
	u += "Usage:\n"
	u += "  find [path] [expression]\n"
	u += "\n"

	u += cmdutil.FormatTable(
		[]cmdutil.ColumnHeader{{ShortName: "p", FullName: "Predicates"}, {ShortName: "d", FullName: ""}},
		[][]string{
			{"  -name pattern", "entry's basename matches the shell pattern"},
			{"  -iname pattern", "like -name, but case-insensitive"},
			{"  -path pattern", "entry's relative path matches the shell pattern"},
			{"  -ipath pattern", "like -path, but case-insensitive"},
			{"  -type f|d", "entry is a file / a directory"},
			{"  -empty", "entry is a zero-byte file or an empty directory"},
			{"  -mtime [+|-]n", "entry's age in 24-hour periods is, exceeds, or is under n"},
			{"  -newer file", "entry was modified more recently than file"},
			{"  -newermt timestamp", "entry was modified after the given timestamp"},
			{"  -size [+|-]n[ckMGb]", "entry's size in the given unit (default 512-byte blocks)"},
		},
	)
	u += "\n"
	u += cmdutil.FormatTable(
		[]cmdutil.ColumnHeader{{ShortName: "o", FullName: "Operators"}, {ShortName: "d", FullName: ""}},
		[][]string{
			{"  ! expr, -not expr", "negates the following predicate"},
			{"  expr expr, expr -a expr", "conjunction (implicit between adjacent predicates)"},
			{"  expr -o expr", "disjunction; binds looser than conjunction"},
		},
	)
	u += "\n"
	u += cmdutil.FormatTable(
		[]cmdutil.ColumnHeader{{ShortName: "a", FullName: "Actions and options"}, {ShortName: "d", FullName: ""}},
		[][]string{
			{"  -print", "print matches, newline-separated (the default)"},
			{"  -print0", "print matches, NUL-separated"},
			{"  -delete", "remove matches, deepest first"},
			{"  -exec cmd ... ; | +", "run cmd per match, or once for all matches with +"},
			{"  -maxdepth n", "do not traverse entries at depths greater than n"},
			{"  -mindepth n", "do not report entries at depths less than n"},
			{"  -h, -help", "print this usage"},
		},
	)
	u += "\n"
	u += "The reference time for -mtime is find's start time. In -exec templates, a {}\n"
	u += "fragment stands for the matched path(s).\n"
	return u
}
