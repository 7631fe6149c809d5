package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matforge/matforge/pkg/compression"
	"github.com/matforge/matforge/pkg/config"
	"github.com/matforge/matforge/pkg/formats"
	"github.com/matforge/matforge/pkg/logger"
	"github.com/matforge/matforge/pkg/matbin"
	"github.com/matforge/matforge/pkg/material"
	"github.com/matforge/matforge/pkg/materialtools"
	stringpool "github.com/matforge/matforge/pkg/strings"
)

var version = "0.1.0"

var cfg *config.Config

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var configFile, logLevel string

	root := &cobra.Command{
		Use:   "matforge",
		Short: "matforge - layered material-attribute store toolkit",
		Long: `matforge inspects, converts and merges layered material files.
Materials are stores of typed key/value attributes packed into fixed 64-byte
records, grouped into ordered layers. Supported formats: json, yaml and the
matbin binary container.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			return logger.Init(logger.Config{
				Level:       cfg.Log.Level,
				Encoding:    cfg.Log.Encoding,
				Development: cfg.Log.Development,
			})
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default matforge.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("matforge v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newInspectCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newMergeCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// detectFormat maps a file extension to a format name, with an explicit
// override winning over the extension.
func detectFormat(path, override string) (string, error) {
	if override != "" {
		switch override {
		case "json", "yaml", "matbin":
			return override, nil
		}
		return "", fmt.Errorf("unknown format %q", override)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".matbin", ".bin":
		return "matbin", nil
	}
	if cfg != nil {
		return cfg.Output.Format, nil
	}
	return "", fmt.Errorf("cannot detect format of %s, use --from/--to", path)
}

func loadMaterial(path, format string) (*material.Material, error) {
	f, err := os.Open(path) //nolint:gosec // G304: CLI argument
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "json":
		return formats.DecodeJSON(f)
	case "yaml":
		return formats.DecodeYAML(f)
	case "matbin":
		return matbin.Decode(f)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func saveMaterial(path, format string, m *material.Material, opts *matbin.EncodeOptions) error {
	f, err := os.Create(path) //nolint:gosec // G304: CLI argument
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "json":
		return formats.EncodeJSON(f, m, cfg.Output.Pretty)
	case "yaml":
		return formats.EncodeYAML(f, m)
	case "matbin":
		return matbin.Encode(f, m, opts)
	}
	return fmt.Errorf("unknown format %q", format)
}

func newInspectCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a material file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := detectFormat(args[0], from)
			if err != nil {
				return err
			}
			m, err := loadMaterial(args[0], format)
			if err != nil {
				return err
			}

			fmt.Printf("Types: %s\n", m.Types())
			fmt.Printf("Layers: %d\n", m.LayerCount())
			for layer := 0; layer < m.LayerCount(); layer++ {
				name := m.LayerName(layer)
				if name == "" {
					if layer == 0 {
						name = "(base)"
					} else {
						name = "(unnamed)"
					}
				}
				fmt.Printf("\nLayer %d %s, %d attributes:\n", layer, name, m.AttributeCount(layer))

				w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "  NAME\tTYPE\tVALUE")
				for id := 0; id < m.AttributeCount(layer); id++ {
					a := m.AttributeAt(layer, id)
					fmt.Fprintf(w, "  %s\t%s\t%s\n", a.Name(), a.Type(), stringpool.ValueToString(a.Value()))
				}
				w.Flush()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "input format: json, yaml or matbin")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var from, to, compress string
	var level int
	var phongToPbr bool

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a material between json, yaml and matbin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inFormat, err := detectFormat(args[0], from)
			if err != nil {
				return err
			}
			outFormat, err := detectFormat(args[1], to)
			if err != nil {
				return err
			}

			m, err := loadMaterial(args[0], inFormat)
			if err != nil {
				return err
			}

			if phongToPbr {
				m, err = materialtools.PhongToPbrMetallicRoughness(m, 0)
				if err != nil {
					return err
				}
			}

			opts, err := encodeOptions(compress, level)
			if err != nil {
				return err
			}
			if err := saveMaterial(args[1], outFormat, m, opts); err != nil {
				return err
			}
			logger.Info("converted material",
				zap.String("from", args[0]),
				zap.String("to", args[1]),
				zap.String("format", outFormat))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "input format: json, yaml or matbin")
	cmd.Flags().StringVar(&to, "to", "", "output format: json, yaml or matbin")
	cmd.Flags().StringVar(&compress, "compress", "", "matbin compression: none, gzip, snappy, lz4, zstd, s2")
	cmd.Flags().IntVar(&level, "level", 0, "compression level 1..9")
	cmd.Flags().BoolVar(&phongToPbr, "phong-to-pbr", false, "convert Phong attributes to metallic/roughness")
	return cmd
}

// encodeOptions resolves the container compression settings, flags first,
// configuration defaults second.
func encodeOptions(compress string, level int) (*matbin.EncodeOptions, error) {
	if compress == "" {
		compress = cfg.Compress.Algorithm
	}
	algo, err := compression.ParseAlgorithm(compress)
	if err != nil {
		return nil, err
	}
	if level == 0 {
		level = cfg.Compress.Level
	}
	if level < 1 || level > 9 {
		return nil, fmt.Errorf("compression level %d outside 1..9", level)
	}
	return &matbin.EncodeOptions{
		Algorithm: algo,
		Level:     compression.Level(level),
	}, nil
}

func newMergeCmd() *cobra.Command {
	var onConflict, to, compress string
	var level int

	cmd := &cobra.Command{
		Use:   "merge <first> <second> <out>",
		Short: "Merge two materials into one",
		Long: `Merge combines the layers and attributes of two materials. The first
material wins conflicts according to --on-conflict: Fail,
KeepFirstIfSameType or KeepFirst.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, ok := materialtools.ParseMergeConflicts(onConflict)
			if !ok {
				return fmt.Errorf("unknown conflict mode %q", onConflict)
			}

			var inputs [2]*material.Material
			for i, path := range args[:2] {
				format, err := detectFormat(path, "")
				if err != nil {
					return err
				}
				if inputs[i], err = loadMaterial(path, format); err != nil {
					return err
				}
			}

			merged, err := materialtools.Merge(inputs[0], inputs[1], conflicts)
			if err != nil {
				return err
			}

			outFormat, err := detectFormat(args[2], to)
			if err != nil {
				return err
			}
			opts, err := encodeOptions(compress, level)
			if err != nil {
				return err
			}
			return saveMaterial(args[2], outFormat, merged, opts)
		},
	}
	cmd.Flags().StringVar(&onConflict, "on-conflict", "Fail", "conflict mode: Fail, KeepFirstIfSameType, KeepFirst")
	cmd.Flags().StringVar(&to, "to", "", "output format: json, yaml or matbin")
	cmd.Flags().StringVar(&compress, "compress", "", "matbin compression: none, gzip, snappy, lz4, zstd, s2")
	cmd.Flags().IntVar(&level, "level", 0, "compression level 1..9")
	return cmd
}
