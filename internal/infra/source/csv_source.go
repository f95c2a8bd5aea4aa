package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qpeachy/deactivate-user-airtable/internal/entity"
)

var ErrNoData = errors.New("no data found in input file")

// RowIterator percorre as linhas da fonte, na ordem. Next devolve
// io.EOF quando acabar.
type RowIterator interface {
	Next() (entity.Row, error)
	Close() error
}

// CSVSource lê o export de usuários gerado pela Web UI do Airtable.
// O delimitador é configurável porque alguns exports vêm com ';'.
type CSVSource struct {
	Delimiter rune
}

func NewCSVSource(delimiter rune) *CSVSource {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVSource{Delimiter: delimiter}
}

func (s *CSVSource) Rows(path string) (RowIterator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file %s: %w", path, err)
	}

	reader := csv.NewReader(f)
	reader.Comma = s.Delimiter
	// Linhas podem vir com menos colunas que o header, isso não é erro
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		f.Close()
		// Arquivo sem nem o header: não tem o que processar
		return nil, fmt.Errorf("%w %s", ErrNoData, filepath.Base(path))
	}

	return &csvRows{file: f, reader: reader, header: header}, nil
}

type csvRows struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

// Next monta a linha como mapa coluna -> valor, só com as colunas que a
// linha realmente tem (igual um DictReader).
func (it *csvRows) Next() (entity.Row, error) {
	record, err := it.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(entity.Row, len(it.header))
	for i, name := range it.header {
		if i < len(record) {
			row[name] = record[i]
		}
	}
	return row, nil
}

func (it *csvRows) Close() error {
	return it.file.Close()
}
