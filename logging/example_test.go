package logging_test

import (
	"github.com/grovetools/sticky/logging"
	"github.com/sirupsen/logrus"
)

func ExampleNewLogger() {
	log := logging.NewLogger("broadcaster")

	log.Debug("Frame requested")
	log.Info("Mounted on viewport")

	log.WithFields(logrus.Fields{
		"listeners": 3,
		"frame":     12,
	}).Debug("Broadcasting scroll sample")

	log.WithField("element", "section-2").Info("Header stuck")
}

func ExampleNewLogger_configuration() {
	// Configuration via sticky.yml:
	//
	// logging:
	//   level: debug              # Set log level
	//   report_caller: true       # Include file/line info
	//   file:
	//     enabled: true
	//     path: ~/.local/state/sticky/sticky.log
	//   format:
	//     preset: json           # Use JSON output format

	// Or via environment variables:
	// STICKY_LOG_LEVEL=debug
	// STICKY_LOG_CALLER=true

	log := logging.NewLogger("viewer")
	log.Info("This will respect the configuration")
}
