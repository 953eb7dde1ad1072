package cmd

import (
	"os"
	"time"
)

// Injection points for tests.
var (
	envGet  = os.Getenv
	nowFunc = time.Now
)
