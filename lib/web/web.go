package web

import (
	"log"
	"os"
	"os/signal"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/errors"
)

func NewWeb() command.Task[config.WebConfig] {
	return &web{}
}

type web struct {
}

func (t *web) Run(c *config.WebConfig) error {
	quit := make(chan os.Signal, 1)
	svr := newServer(c)
	runningSvr, err := svr.Start()
	if runningSvr != nil {
		defer runningSvr.Stop()
	}
	if err != nil {
		return errors.Wrap(err, "failed to start server")
	}
	log.Println("Press Ctrl-C to shutdown server")
	signal.Notify(quit, os.Interrupt)
	<-quit
	runningSvr.Stop()
	return nil
}
