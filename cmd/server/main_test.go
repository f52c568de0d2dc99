package main

import "testing"

func TestMainRespectsSkipGuard(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}
