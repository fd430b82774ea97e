package tui

type MsgKind int

const (
	MsgUser MsgKind = iota
	MsgBot
)

var kindName = map[MsgKind]string{
	MsgUser: "user",
	MsgBot:  "bot",
}

func (k MsgKind) String() string {
	return kindName[k]
}

// Msg is one turn in the displayed conversation.
type Msg struct {
	Text string
	Kind MsgKind
}
