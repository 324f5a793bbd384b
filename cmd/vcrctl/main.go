// vcrctl sends remote-control commands to a VCR over its RS-232 port.
// It can also enumerate serial ports and detect USB serial adapters to
// help find the right port for the control cable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/foone/serial-vcr/internal/config"
	"github.com/foone/serial-vcr/internal/discovery"
	"github.com/foone/serial-vcr/internal/discovery/serialport"
	"github.com/foone/serial-vcr/internal/discovery/usb"
	"github.com/foone/serial-vcr/internal/utils"
	"github.com/foone/serial-vcr/internal/vcr"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	port := flag.String("port", "", "serial port of the control cable (e.g. /dev/ttyUSB0 or COM2)")
	baud := flag.Int("baud", 0, "baud rate (default from config, normally 9600)")
	gap := flag.Duration("gap", 0, "delay after each command (default from config, normally 5ms)")
	list := flag.Bool("list", false, "list serial ports and exit")
	scanUSB := flag.Bool("scan-usb", false, "detect known USB serial adapter chips and exit")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	if *port != "" {
		cfg.Serial.Port = *port
	}
	if *baud != 0 {
		cfg.Serial.BaudRate = *baud
	}
	if *gap != 0 {
		cfg.Serial.CommandGap = *gap
	}

	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer utils.CloseLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *list:
		err = listPorts(ctx, logger)
	case *scanUSB:
		err = scanAdapters(ctx, logger)
	default:
		err = sendCommands(ctx, cfg, logger, flag.Args())
	}
	if err != nil {
		logger.Error("vcrctl failed", zap.Error(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] command...\n\ncommands:\n", os.Args[0])
	for _, cmd := range vcr.Commands() {
		fmt.Fprintf(os.Stderr, "  %s\n", cmd)
	}
	fmt.Fprintf(os.Stderr, "\nflags:\n")
	flag.PrintDefaults()
}

// sendCommands opens the port once and sends each named command in order.
func sendCommands(ctx context.Context, cfg *config.Config, logger *zap.Logger, names []string) error {
	if len(names) == 0 {
		usage()
		return fmt.Errorf("no command given")
	}
	if cfg.Serial.Port == "" {
		return fmt.Errorf("no serial port given (use -port or the config file)")
	}

	// Resolve every name before touching the port, so a typo in the
	// last command does not leave the deck half way through a sequence.
	commands := make([]vcr.Command, 0, len(names))
	for _, name := range names {
		cmd, err := vcr.ParseCommand(name)
		if err != nil {
			return err
		}
		commands = append(commands, cmd)
	}

	controller, err := vcr.New(&vcr.Config{
		Port:       cfg.Serial.Port,
		BaudRate:   cfg.Serial.BaudRate,
		CommandGap: cfg.Serial.CommandGap,
	}, logger)
	if err != nil {
		return err
	}
	defer controller.Close()

	for _, cmd := range commands {
		if err := controller.Send(ctx, cmd); err != nil {
			return err
		}
		fmt.Printf("%s  sent %s\n", time.Now().Format(time.RFC3339), cmd)
	}
	return nil
}

// listPorts prints every serial port the host knows about.
func listPorts(ctx context.Context, logger *zap.Logger) error {
	scanner := serialport.NewScanner(logger, nil)

	ports, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}

	for _, p := range ports {
		fmt.Println(formatPort(p))
	}
	return nil
}

// scanAdapters prints known USB serial adapter chips on the bus.
func scanAdapters(ctx context.Context, logger *zap.Logger) error {
	scanner := usb.NewScanner(logger, nil)
	if !scanner.IsAvailable() {
		return fmt.Errorf("USB scanning is not available on this platform")
	}

	adapters, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}
	if len(adapters) == 0 {
		fmt.Println("no known serial adapters found")
		return nil
	}

	for _, a := range adapters {
		fmt.Printf("%s:%s  %s\n", a.VendorID, a.ProductID, a.AdapterName)
	}
	return nil
}

func formatPort(p *discovery.DiscoveredPort) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	if p.IsUSB {
		fmt.Fprintf(&sb, "  [USB %s:%s", p.VendorID, p.ProductID)
		if p.SerialNumber != "" {
			fmt.Fprintf(&sb, " SN %s", p.SerialNumber)
		}
		sb.WriteString("]")
		if p.Product != "" {
			fmt.Fprintf(&sb, "  %s", p.Product)
		}
	}
	return sb.String()
}
