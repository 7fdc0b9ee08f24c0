package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// SetAutostart registers or unregisters the poller with the OS session
// startup mechanism and persists the choice in the store. Reports whether
// anything actually changed.
func (a *App) SetAutostart(enable bool) (bool, error) {
	dir, s, _, err := a.load()
	if err != nil {
		return false, err
	}

	artifact, err := autostartArtifact()
	if err != nil {
		return false, err
	}
	_, statErr := os.Stat(artifact)
	enabled := statErr == nil

	changed := false
	switch {
	case enable && !enabled:
		exe, err := monitorExecutable()
		if err != nil {
			return false, err
		}
		if err := os.MkdirAll(filepath.Dir(artifact), 0o755); err != nil {
			return false, err
		}
		if err := os.WriteFile(artifact, autostartContent(exe, dir), 0o644); err != nil {
			return false, err
		}
		changed = true
	case !enable && enabled:
		if err := os.Remove(artifact); err != nil {
			return false, err
		}
		changed = true
	}

	if s.Autostart != enable {
		s.Autostart = enable
		if err := s.Save(dir); err != nil {
			return changed, fmt.Errorf("save store: %w", err)
		}
	}
	return changed, nil
}

// autostartArtifact returns the file whose presence makes the session
// start laches-mon: an XDG autostart entry, a LaunchAgent plist, or a
// Startup-folder script.
func autostartArtifact() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "LaunchAgents", "com.lachesis.laches-mon.plist"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA is not set")
		}
		return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup", "laches-mon.cmd"), nil
	default:
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "autostart", "laches-mon.desktop"), nil
	}
}

func autostartContent(exe, dir string) []byte {
	switch runtime.GOOS {
	case "darwin":
		return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>com.lachesis.laches-mon</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>-store</string>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, exe, dir))
	case "windows":
		return []byte(fmt.Sprintf("start \"\" \"%s\" -store \"%s\"\r\n", exe, dir))
	default:
		return []byte(fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=laches-mon
Exec=%s -store %s
Terminal=false
X-GNOME-Autostart-enabled=true
`, exe, dir))
	}
}
