package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	infoColorFG  = pterm.FgLightGreen
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("Internal Error")
	errorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on the sable repository\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + message)
}

// displayUnitMessage displays an error or warning attributed to a compilation
// unit.  The label is the string to prefix the message with: eg. "error".
func displayUnitMessage(label, unitName, message string) {
	if label == "error" {
		errorStyleBG.Print("Error")
		errorColorFG.Printf(" %s: %s\n", unitName, message)
	} else {
		warnStyleBG.Print("Warning")
		warnColorFG.Printf(" %s: %s\n", unitName, message)
	}
}

// displayInfo displays an informational message.
func displayInfo(message string) {
	infoStyleBG.Print("Info")
	infoColorFG.Println(" " + message)
}
