package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"botvm/config"
	"botvm/cpu"
	"botvm/machine"
)

func main() {
	var config_file string
	var program string
	var restore string
	var save string
	var owner string
	var output string
	var verbose bool

	flag.StringVar(&config_file, "c", "", "starlark configuration file")
	flag.StringVar(&program, "p", "", "program image to load")
	flag.StringVar(&restore, "r", "", "snapshot file to restore the machine from")
	flag.StringVar(&save, "s", "", "snapshot file to save the machine to after the run")
	flag.StringVar(&owner, "n", "local", "owner tag for the machine")
	flag.StringVar(&output, "o", "-", "console output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		logrus.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	conf := cpu.DefaultConfig()
	if len(config_file) != 0 {
		var err error
		conf, err = config.Load(config_file)
		if err != nil {
			logrus.Fatalf("%v: %v", config_file, err)
		}
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			logrus.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	var m *machine.Machine
	if len(restore) != 0 {
		var err error
		m, err = machine.RestoreSnapshot(restore, conf, owner, out, nil)
		if err != nil {
			logrus.Fatalf("%v: %v", restore, err)
		}
	} else {
		var err error
		m, err = machine.New(conf, owner, out, nil)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
	}
	m.Verbose = verbose

	if len(program) != 0 {
		_, err := m.LoadProgramFile(program)
		if err != nil {
			logrus.Fatalf("%v: %v", program, err)
		}
	}

	err := m.Run()
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	if m.Status.Fault {
		logrus.Warn("cpu: program faulted")
	}

	if len(save) != 0 {
		err = m.SaveSnapshot(save)
		if err != nil {
			logrus.Fatalf("%v: %v", save, err)
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, m)
	}
}
