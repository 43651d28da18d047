package tutor

import "strings"

// Command is a reserved token recognized ahead of free-text
// interpretation, case-insensitive.
type Command string

const (
	CmdAnswer   Command = "answer" // free text, not a reserved token
	CmdQuit     Command = "quit"
	CmdPractice Command = "practice"
	CmdHint     Command = "hint"
	CmdSkip     Command = "skip"
	CmdNext     Command = "next"
	CmdHelp     Command = "help"
)

// ParseCommand classifies one line of learner input. Anything that is
// not a reserved token is an answer.
func ParseCommand(input string) (Command, string) {
	text := strings.TrimSpace(input)
	switch strings.ToLower(text) {
	case "quit", "exit":
		return CmdQuit, text
	case "practice":
		return CmdPractice, text
	case "hint":
		return CmdHint, text
	case "skip":
		return CmdSkip, text
	case "next":
		return CmdNext, text
	case "help":
		return CmdHelp, text
	}
	return CmdAnswer, text
}

// helpText lists the recognized commands. help is side-effect-free and
// never changes state.
const helpText = `Commands (anywhere in a session):
  practice    work a practice problem on the current subtopic
  hint        reveal the next hint during practice
  skip        skip the current question, subtopic, or problem
  next        move on to the next subtopic
  help        show this list
  quit/exit   save your progress and end the session

Anything else is treated as your answer.`

// notApplicable is the uniform reply for a recognized command that the
// active state cannot act on. State is unchanged.
func notApplicable(cmd Command) string {
	return "'" + string(cmd) + "' is not applicable right now. Type 'help' to see what is."
}
