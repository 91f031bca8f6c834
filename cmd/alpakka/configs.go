package main

import (
	"fmt"
	"io"
	"os"

	"github.com/advaoptical/alpakka/bind"
	"github.com/advaoptical/alpakka/encode"
	"github.com/advaoptical/alpakka/format"
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Schema  string `cli:"name=schema desc='schema descriptor file (yaml or json)'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) registry() (*schema.Registry, error) {
	if cfg.Schema == "" {
		return nil, fmt.Errorf("%w: -schema is required", cli.ErrUsage)
	}
	return schema.LoadFile(cfg.Schema)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDoc reads a data document, choosing the parser by file extension.
// "-" reads JSON from stdin.
func readDoc(arg string) (*ir.Node, error) {
	var (
		r    io.Reader = os.Stdin
		fmat           = format.JSONFormat
	)
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
		if sf, ok := format.FromSuffix(arg); ok {
			fmat = sf
		}
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc *ir.Node
	switch fmat {
	case format.YAMLFormat:
		doc, err = ir.FromYAML(d)
	case format.XMLFormat:
		return nil, fmt.Errorf("%s: %w: xml input", arg, ir.ErrUnsupported)
	default:
		doc, err = ir.FromJSON(d)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

// writeValue writes a detached value tree in the output format.
func (cfg *MainConfig) writeValue(w io.Writer, y *ir.Node) error {
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// writeInstances writes roots as one document.
func (cfg *MainConfig) writeInstances(w io.Writer, insts []*bind.Instance) error {
	if cfg.outFormat().IsXML() {
		indent := "  "
		if cfg.WireOut {
			indent = ""
		}
		return bind.WriteXMLDocument(w, indent, insts...)
	}
	doc, err := bind.EncodeAll(insts)
	if err != nil {
		return err
	}
	return cfg.writeValue(w, doc)
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expression selecting list entries'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Root string `cli:"name=root desc='root to patch, by name (default: the only root)'"`
	Path string `cli:"name=at desc='data path below the root to patch'"`

	Patch *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type SchemaConfig struct {
	*MainConfig

	Describe *cli.Command
}
