package logging

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

// Setup configures the process-wide logger. Warnings from tolerated
// exiftool stderr output land here; verbose mode additionally surfaces
// debug detail such as repair passes.
func Setup(verbose bool) {
	log.SetHandler(text.New(os.Stderr))
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
