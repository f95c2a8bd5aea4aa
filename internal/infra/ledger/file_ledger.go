package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const DefaultPath = "deactivated.txt"

// FileLedger guarda em texto puro, um id por linha, os usuários já
// desativados. É o que deixa a ferramenta segura para rodar de novo:
// um rerun reconstrói o "já feito" só com estado local, sem precisar
// consultar o Airtable.
type FileLedger struct {
	Path string
}

func NewFileLedger(path string) *FileLedger {
	if path == "" {
		path = DefaultPath
	}
	return &FileLedger{Path: path}
}

// Load lê o ledger inteiro para memória. Arquivo inexistente não é
// erro, é só a primeira execução.
func (l *FileLedger) Load() (map[string]bool, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("open ledger %s: %w", l.Path, err)
	}
	defer f.Close()

	done := map[string]bool{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id != "" {
			done[id] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", l.Path, err)
	}
	return done, nil
}

// Record anexa o id (append, nunca sobrescreve) e força o flush para o
// disco antes de voltar: é o checkpoint de recuperação pós-crash.
func (l *FileLedger) Record(id string) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger %s for append: %w", l.Path, err)
	}

	if _, err := fmt.Fprintf(f, "%s\n", id); err != nil {
		f.Close()
		return fmt.Errorf("append %s to ledger: %w", id, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync ledger: %w", err)
	}
	return f.Close()
}
