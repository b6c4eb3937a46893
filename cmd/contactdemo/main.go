package main

import (
	"flag"
	"fmt"
	"github.com/cbream22/contact"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
)

func main() {
	size := flag.Int64("size", 10, "Number of buckets in the contact table")
	logFile := flag.String("logfile", "", "Write logs to this file with rotation instead of stderr")
	debug := flag.Bool("debug", false, "Enable development logging")
	flag.Parse()

	logger := newLogger(*logFile, *debug)

	err := run(os.Stdout, logger, *size)
	err = multierr.Append(err, ignoreSyncError(logger.Sync()))
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run replays the insert, collision, update and search scenario against a fresh table.
func run(out io.Writer, logger *zap.Logger, size int64) error {
	table, err := contact.NewTable(size)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	logger.Info("table created", zap.Int64("size", table.Size()))

	if err := table.Dump(out); err != nil {
		return err
	}

	fmt.Fprint(out, "\nAdding values...\n\n")
	insert(table, logger, "John", "909-876-1234")
	insert(table, logger, "Rebecca", "111-555-0002")
	if err := table.Dump(out); err != nil {
		return err
	}

	c, found := table.Search("John")
	fmt.Fprintln(out, "\nSearch result:", render(c, found))

	fmt.Fprint(out, "\nTesting collisions...\n\n")
	insert(table, logger, "Amy", "111-222-3333")
	insert(table, logger, "May", "222-333-1111")
	if err := table.Dump(out); err != nil {
		return err
	}

	fmt.Fprint(out, "\nTesting duplicate key update...\n\n")
	insert(table, logger, "Rebecca", "999-444-9999")
	if err := table.Dump(out); err != nil {
		return err
	}

	c, found = table.Search("Chris")
	fmt.Fprintf(out, "\nSearch result for 'Chris': %s\n", render(c, found))

	stat, err := table.Stat(false)
	if err != nil {
		return err
	}
	logger.Info("table stats",
		zap.Int64("records", stat.Records),
		zap.Int64("used_buckets", stat.UsedBuckets),
		zap.Int64("longest_chain", stat.LongestChain),
		zap.Float64("load_factor", stat.LoadFactor),
	)

	return nil
}

func insert(table *contact.Table, logger *zap.Logger, name, number string) {
	if table.Insert(name, number) {
		logger.Debug("contact added", zap.String("name", name), zap.Int64("bucket", table.GetBucketNo(name)))
		return
	}
	logger.Debug("contact updated", zap.String("name", name), zap.Int64("bucket", table.GetBucketNo(name)))
}

func render(c contact.Contact, found bool) string {
	if !found {
		return "not found"
	}
	return c.String()
}

func newLogger(logFile string, debug bool) *zap.Logger {
	level := zap.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		level = zap.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if logFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7,
		})
	}

	var encoder zapcore.Encoder
	if debug {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	return zap.New(zapcore.NewCore(encoder, sink, level))
}

// ignoreSyncError drops the error Sync returns for terminals and pipes on stderr.
func ignoreSyncError(err error) error {
	if err == nil {
		return nil
	}
	if pathErr, ok := err.(*os.PathError); ok && pathErr.Path == "/dev/stderr" {
		return nil
	}
	return err
}
