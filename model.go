package main

// Wiring describes how a button is connected to its GPIO pin.  With
// "active-low" wiring the pin is pulled up and a press connects it to
// ground; with "active-high" the pin is pulled down and a press drives it
// high.  Active-low is by far the most common arrangement on the Pi header
// and is the default.
type Wiring string

const (
	WiringActiveLow  Wiring = "active-low"
	WiringActiveHigh Wiring = "active-high"
)

// Config is the full runtime configuration of the daemon, assembled once at
// startup from flags, environment variables and an optional JSON config
// file.  It is passed by value to everything constructed from it and never
// changes afterwards.
type Config struct {
	ButtonPin     int    `json:"button_pin"`     // BCM pin of the command button
	ResetPin      int    `json:"reset_pin"`      // BCM pin of the reset button
	AllowReset    bool   `json:"allow_reset"`    // if false the reset pin is never opened
	WaitSeconds   int    `json:"wait_seconds"`   // delay between command and end command
	Command       string `json:"command"`        // shell command run on button press
	EndCommand    string `json:"end_command"`    // optional second command, run after the wait
	RebootCommand string `json:"reboot_command"` // shell command issued by the reset button
	Wiring        Wiring `json:"wiring"`         // button wiring, see Wiring
	Quiet         bool   `json:"quiet"`          // suppress forwarding of command output
	Verbosity     int    `json:"verbosity"`      // 0 = warn, 1 = info, 2+ = debug
	LogFile       string `json:"log_file"`       // optional timestamped event file
}
