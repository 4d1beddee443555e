package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/postalsys/tuntap/internal/link"
	"github.com/postalsys/tuntap/internal/tun"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openOptions mirrors the open command's flags.
type openOptions struct {
	Name       string
	Mode       string
	PacketInfo bool
	MTU        int
	Address    string
	Address6   string
	Up         bool
}

func newOpenCmd() *cobra.Command {
	var opts openOptions

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Create a TUN/TAP device and hold it open",
		Long: `Open creates a virtual network interface and keeps it alive until
interrupted, logging the size of every packet it receives. The
interface disappears when the command exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := GetLogger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyOverrides(cfg, opts, cmd.Flags().Changed)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			dev, err := tun.Open(cfg.DeviceSettings())
			if err != nil {
				logCreationError(log, err)
				return err
			}
			defer dev.Close()

			log.Info("device created",
				zap.String("name", dev.Name()),
				zap.String("mode", dev.Mode().String()),
				zap.Bool("packet_info", cfg.Device.PacketInfo),
			)

			settings := linkSettings(cfg)
			if !settings.IsZero() {
				if err := link.Apply(dev.Name(), settings); err != nil {
					return fmt.Errorf("failed to configure link: %w", err)
				}
				log.Info("link configured",
					zap.Int("mtu", settings.MTU),
					zap.String("address", settings.Address),
					zap.String("address6", settings.Address6),
					zap.Bool("up", settings.Up),
				)
			}

			return pump(dev, log)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "interface name (empty for kernel auto-naming)")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "tun", "device mode: tun or tap")
	cmd.Flags().BoolVar(&opts.PacketInfo, "packet-info", false, "keep the 4-byte kernel prefix on each packet")
	cmd.Flags().IntVar(&opts.MTU, "mtu", 0, "MTU to set after creation (0 leaves the default)")
	cmd.Flags().StringVar(&opts.Address, "address", "", "IPv4 address in CIDR form, e.g. 10.200.200.1/24")
	cmd.Flags().StringVar(&opts.Address6, "address6", "", "IPv6 address in CIDR form, e.g. fd00:200::1/64")
	cmd.Flags().BoolVar(&opts.Up, "up", false, "bring the interface up after creation")

	return cmd
}

// pump reads packets from the device, logging their sizes, until a
// shutdown signal arrives or the device errors out.
func pump(dev tun.Device, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		buf := make([]byte, 65536)
		for {
			n, err := dev.Read(buf)
			if err != nil {
				errCh <- err
				return
			}
			log.Info("packet received", zap.Int("bytes", n))
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return fmt.Errorf("device read failed: %w", err)
	}
}

// logCreationError spells out the corrective action for the failure
// kinds a user can do something about.
func logCreationError(log *zap.Logger, err error) {
	var ioctlErr *tun.IoctlError
	switch {
	case errors.Is(err, tun.ErrDeviceNotFound):
		log.Error("tun device file missing, try: modprobe tun", zap.Error(err))
	case errors.Is(err, tun.ErrPermissionDenied):
		log.Error("insufficient privilege, run as root or grant CAP_NET_ADMIN", zap.Error(err))
	case errors.As(err, &ioctlErr):
		log.Error("kernel rejected the device request", zap.Error(err))
	default:
		log.Error("failed to create device", zap.Error(err))
	}
}
