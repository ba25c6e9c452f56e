package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"pet-health-log/internal/app"
	"pet-health-log/internal/config"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/domain/profiles"
	"pet-health-log/internal/domain/tabs"
	"pet-health-log/internal/platform/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// loadingDelay: si la carga tarda más, se avisa "Loading...".
const loadingDelay = 200 * time.Millisecond

type Deps struct {
	Out    io.Writer
	Log    logger.Logger
	Config func() *config.Config
}

type outputOptions struct {
	JSON bool
}

func New(d Deps) *cobra.Command {
	if d.Out == nil {
		d.Out = color.Output
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Config == nil {
		d.Config = config.Load
	}
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:           "petctl",
		Short:         "Pet health log on the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetOut(d.Out)
	cmd.PersistentFlags().BoolVar(&oo.JSON, "json", false, "Output as JSON.")

	addPets(cmd, d, oo)
	addProfile(cmd, d, oo)
	addServe(cmd, d)
	return cmd
}

func loadConfig(d Deps) (*config.Config, error) {
	cfg := d.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func addPets(topLevel *cobra.Command, d Deps, oo *outputOptions) {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "List all pets.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(d)
			if err != nil {
				return err
			}
			st, closer, err := app.OpenStore(cmd.Context(), cfg, d.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			v := pets.NewService(st, d.Log).List(cmd.Context())
			return NewPrinter(d.Out, oo.JSON).Pets(v)
		},
	}
	topLevel.AddCommand(cmd)
}

func addProfile(topLevel *cobra.Command, d Deps, oo *outputOptions) {
	var tab string

	cmd := &cobra.Command{
		Use:   "profile <pet-id>",
		Short: "Show a pet profile with its monthly summary and logs.",
		Example: `
petctl profile 1
petctl profile 1 --tab Vet_Visits
petctl profile 1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tabs.Parse(tab)
			if err != nil {
				return err
			}
			ctrl := tabs.NewController()
			if _, err := ctrl.Select(t); err != nil {
				return err
			}

			cfg, err := loadConfig(d)
			if err != nil {
				return err
			}
			st, closer, err := app.OpenStore(cmd.Context(), cfg, d.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			p := NewPrinter(d.Out, oo.JSON)
			v, err := waitProfile(cmd.Context(), profiles.NewService(st, d.Log), args[0], p)
			if err != nil {
				return err
			}
			if err := p.Profile(v, ctrl); err != nil {
				return err
			}
			if v.Pet == nil {
				return profiles.ErrProfileNotFound
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(tabs.Default()), fmt.Sprintf("Active tab: %s, %s or %s.", tabs.WeightLogs, tabs.BodyCondition, tabs.VetVisits))
	topLevel.AddCommand(cmd)
}

func waitProfile(ctx context.Context, svc *profiles.Service, petID string, p *Printer) (profiles.View, error) {
	ss := svc.Open(ctx, petID)
	defer ss.Close()

	select {
	case <-ss.Done():
	case <-time.After(loadingDelay):
		if !p.JSON {
			p.faint("Loading...")
		}
	}
	return ss.Wait(ctx)
}

func addServe(topLevel *cobra.Command, d Deps) {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := d.Config()
			if port != "" {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return app.Serve(cmd.Context(), cfg, d.Log)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (overrides PORT).")
	topLevel.AddCommand(cmd)
}
