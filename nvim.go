package bulkfm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neovim/go-client/nvim"
)

// nvimAddr returns the RPC address of a host Neovim instance, if the tool
// was launched from inside one.
func nvimAddr() string {
	if addr := os.Getenv("NVIM"); addr != "" {
		return addr
	}
	return os.Getenv("NVIM_LISTEN_ADDRESS")
}

// openInNvim shows the temporary document in the host Neovim instance and
// blocks until the buffer is written or abandoned. Abandoning the buffer
// leaves the mtime untouched, which the differ reads as a cancel. Falls
// back to the configured editor when the instance is unreachable.
func (a *App) openInNvim(addr, path string) int {
	v, err := nvim.Dial(addr)
	if err != nil {
		if editor := a.cfg.editorCommand(); editor != "" {
			return a.collab.Launch([]string{editor, path})
		}
		a.errorf("bulkfm: nvim: '%s': %s\n", addr, err)
		return exitFailure
	}
	defer v.Close()

	done := make(chan struct{}, 1)
	if err := v.RegisterHandler("bulkfmEdit", func(saved int) {
		done <- struct{}{}
	}); err != nil {
		a.errorf("bulkfm: nvim: %s\n", err)
		return exitFailure
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cid := v.ChannelID()

	b := v.NewBatch()
	b.Command("tabedit " + escapeNvimArg(abs))
	b.Command("setlocal bufhidden=wipe noswapfile")
	b.Command(fmt.Sprintf(
		"autocmd BufWritePost <buffer> ++once call rpcnotify(%d, 'bulkfmEdit', 1)", cid))
	b.Command(fmt.Sprintf(
		"autocmd BufWipeout <buffer> ++once call rpcnotify(%d, 'bulkfmEdit', 0)", cid))
	if err := b.Execute(); err != nil {
		a.errorf("bulkfm: nvim: %s\n", err)
		return exitFailure
	}

	<-done
	return 0
}

// escapeNvimArg quotes a path for an ex command, fnameescape-style.
func escapeNvimArg(path string) string {
	r := strings.NewReplacer(" ", `\ `, "|", `\|`, `"`, `\"`, "%", `\%`, "#", `\#`)
	return r.Replace(path)
}
