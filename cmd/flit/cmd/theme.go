package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/flit/cmd/flit/internal/config"
	"github.com/go-drift/flit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print the resolved theme",
		Long: `Print the theme frames are built with, as a YAML theme document.

The output starts from the default theme, applies theme_file and the
inline theme section of flit.yaml, and can be saved and referenced as a
theme_file.`,
		Usage: "flit theme",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	res, err := config.Resolve(root)
	if err != nil {
		return err
	}
	data, err := theme.Marshal(res.Theme)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
