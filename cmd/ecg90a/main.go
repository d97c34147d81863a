/*
NAME
  ecg90a - reads Contec ECG90A device files and exports CSV and SCP-ECG.

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py __main__)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ecg90a is a command-line tool that parses device files
// recorded by a Contec ECG90A electrocardiograph and exports them as
// CSV and/or SCP-ECG records.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/rigacci/ecg90a/device/ecg90a"
	"github.com/rigacci/ecg90a/ecgconfig"
)

// Logging configuration.
const (
	logPath      = "/var/log/ecg90a/ecg90a.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logSuppress  = true
)

func main() {
	var (
		csvPath     = flag.String("csv", "", "write CSV export to this path (default: <input>.csv)")
		scpPath     = flag.String("scp", "", "write SCP-ECG export to this path (default: <input>.scp)")
		overwrite   = flag.Bool("overwrite", false, "allow overwriting an existing output file")
		millivolt   = flag.Bool("millivolt", false, "scale CSV values to millivolts instead of raw counts")
		noneAsZero  = flag.Bool("none-as-zero", false, "render null CSV cells as 0 instead of empty")
		cols        = flag.Int("cols", ecgconfig.DefaultColumns, "number of lead columns to export")
		xoffset     = flag.Int("xoffset", ecgconfig.DefaultXOffset, "shift applied to every sample before CSV export")
		logLevel    = flag.Int("log-level", int(logging.Info), "log level (0=Debug .. 4=Fatal)")
		logToStderr = flag.Bool("log-stderr", false, "also log to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ecg90a [flags] <device-file>")
		os.Exit(2)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	var w = io.Writer(fileLog)
	if *logToStderr {
		w = io.MultiWriter(fileLog, os.Stderr)
	}
	log := logging.New(int8(*logLevel), w, logSuppress)

	cfg := ecgconfig.Defaults()
	cfg.InputPath = flag.Arg(0)
	cfg.CSVPath = *csvPath
	cfg.EmitCSV = true
	cfg.SCPPath = *scpPath
	cfg.EmitSCP = *scpPath != "" || *csvPath == ""
	cfg.Overwrite = *overwrite
	cfg.AsMillivolt = *millivolt
	cfg.NoneAsZero = *noneAsZero
	cfg.Columns = *cols
	cfg.XOffset = int32(*xoffset)

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err.Error())
	}

	rec := ecg90a.Open(log, cfg.InputPath,
		ecg90a.WithSampleRate(cfg.SampleRate),
		ecg90a.WithDataSeries(cfg.DataSeries),
		ecg90a.WithSampleBits(cfg.SampleBits),
	)
	if rec.Errs != 0 {
		log.Fatal("could not parse device file", "path", cfg.InputPath, "errors", rec.Errs.String())
	}

	if cfg.EmitCSV {
		path := cfg.CSVPath
		if path == "" {
			path = cfg.InputPath + ".csv"
		}
		opts := ecgconfig.ToCSVOptions(cfg)
		if err := rec.ExportCSV(path, opts); err != nil {
			log.Error("CSV export failed", "path", path, "error", err.Error())
		} else {
			log.Info("wrote CSV export", "path", path)
		}
	}

	if cfg.EmitSCP {
		path := cfg.SCPPath
		if path == "" {
			path = cfg.InputPath + ".scp"
		}
		if err := rec.ExportSCP(path, cfg.Overwrite); err != nil {
			log.Error("SCP export failed", "path", path, "error", err.Error())
		} else {
			log.Info("wrote SCP-ECG export", "path", path)
		}
	}
}
