package types

// Action is a terminal action registered on the command line. Actions run
// once, in registration order, after traversal has fully completed. When no
// action was registered, find behaves as if -print had been.
type Action interface {
	actionNode()
}

// PrintAction prints the match list. Matches are joined with newlines, or
// with NUL bytes when Null is set, with a trailing separator appended only
// if the list is non-empty.
type PrintAction struct {
	Null bool
}

// DeleteAction removes every match, deepest paths first, non-recursively.
type DeleteAction struct{}

// ExecAction invokes an external command. Template is the ordered list of
// argument fragments; a fragment equal to the Placeholder stands for the
// matched path. In batch mode the command runs exactly once, with every
// placeholder fragment replaced by the entire match list inline; otherwise
// it runs once per match, in traversal order.
type ExecAction struct {
	Template []string
	Batch    bool
}

// Placeholder is the template fragment that stands for the matched path(s)
// in an ExecAction.
const Placeholder = "{}"

func (*PrintAction) actionNode()  {}
func (*DeleteAction) actionNode() {}
func (*ExecAction) actionNode()   {}
