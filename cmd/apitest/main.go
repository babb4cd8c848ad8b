// Command apitest is the flagless driver: it runs the full integration
// suite against the SUT and exits 0 iff more steps passed than failed and
// no critical failure occurred. Configuration comes from the environment
// only: BASE_URL, TEST_EMAIL, TEST_PASSWORD.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mewayz/apiprobe/internal/httpclient"
	"github.com/mewayz/apiprobe/internal/report"
	"github.com/mewayz/apiprobe/internal/run"
	"github.com/mewayz/apiprobe/internal/suites"
)

func main() {
	rc := run.NewContext(os.Getenv("BASE_URL"))
	if email := os.Getenv("TEST_EMAIL"); email != "" {
		rc.Email = email
	}
	if password := os.Getenv("TEST_PASSWORD"); password != "" {
		rc.Password = password
	}

	client := httpclient.New(rc.BaseURL, rc)
	rec := run.NewRecorder(rc, os.Stdout)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	suite := suites.Full()

	start := time.Now()
	suite.Run(context.Background(), rc, client, rec, logger)
	sum := report.Summarize(rc.Results(), time.Since(start))
	report.Print(os.Stdout, sum)

	os.Exit(sum.ExitCode())
}
