package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	climodel "DarkScope/internal/cli/model"
	"DarkScope/internal/config"
)

type settingsCmd struct{}

func (settingsCmd) Name() string        { return "settings" }
func (settingsCmd) Description() string { return "Show or change profile settings" }
func (settingsCmd) Usage() string {
	return "settings [set <theme|tor|api-key> <value>]... | settings reset"
}

// Run без аргументов печатает текущие настройки. `set` принимает несколько
// пар ключ/значение и применяет их одним частичным обновлением; `reset`
// возвращает настройки по умолчанию.
func (settingsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	s, done, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer done()

	if _, err := requireAuth(s); err != nil {
		return err
	}

	if len(args) == 0 {
		printSettings(s.Settings.Get())
		return nil
	}

	if args[0] == "reset" {
		if len(args) != 1 {
			return ErrUsage
		}
		if err := s.Settings.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Settings reset to defaults")
		printSettings(s.Settings.Get())
		return nil
	}

	patch, err := parseSettingsArgs(args)
	if err != nil {
		return err
	}
	if err := s.Settings.Update(patch); err != nil {
		return err
	}
	printSettings(s.Settings.Get())
	return nil
}

// parseSettingsArgs разбирает цепочку `set <key> <value>` в один патч.
func parseSettingsArgs(args []string) (climodel.SettingsPatch, error) {
	var patch climodel.SettingsPatch
	i := 0
	for i < len(args) {
		if args[i] != "set" || i+2 > len(args)-1 {
			return patch, ErrUsage
		}
		key, value := args[i+1], args[i+2]
		switch key {
		case "theme":
			v := strings.ToLower(value)
			patch.Theme = &v
		case "tor":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return patch, fmt.Errorf("tor expects true/false, got %q", value)
			}
			patch.TorEnabled = &b
		case "api-key":
			v := value
			patch.APIKey = &v
		default:
			return patch, fmt.Errorf("unknown setting %q (theme, tor, api-key)", key)
		}
		i += 3
	}
	return patch, nil
}

func printSettings(st climodel.Settings) {
	accent().Fprintln(Out, "Settings")
	fmt.Fprintf(Out, "  theme:   %s\n", st.Theme)
	fmt.Fprintf(Out, "  tor:     %t\n", st.TorEnabled)
	key := st.APIKey
	if key == "" {
		key = "(not set)"
	}
	fmt.Fprintf(Out, "  api-key: %s\n", key)
}

func init() { RegisterCmd(settingsCmd{}) }
