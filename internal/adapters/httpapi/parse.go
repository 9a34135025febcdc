package httpapi

import (
	"strconv"
	"strings"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.trai.ch/zerr"
)

// rowPrefix marks listing rows in a reply, e.g. "item0=a|b|c".
const rowPrefix = "item"

// parseResponse decodes the panel's line-oriented reply format: one
// "key=value" pair per line, a "columns" header naming the row schema and
// pipe-delimited "item<N>" rows. Rows are zipped with the column header into
// one Snapshot each; any structural irregularity fails parsing rather than
// producing a partially filled response.
func parseResponse(body []byte) (*domain.Response, error) {
	fields := domain.Snapshot{}
	var columns []string
	rows := map[int][]string{}

	for n, line := range strings.Split(string(body), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrMalformedResponse, "line", n+1), "content", line)
		}

		switch {
		case key == "columns":
			columns = strings.Split(value, "|")
		case strings.HasPrefix(key, rowPrefix):
			idx, err := strconv.Atoi(key[len(rowPrefix):])
			if err != nil || idx < 0 {
				return nil, zerr.With(zerr.With(domain.ErrMalformedResponse, "line", n+1), "key", key)
			}
			rows[idx] = strings.Split(value, "|")
		default:
			fields[key] = value
		}
	}

	if len(rows) > 0 && columns == nil {
		return nil, zerr.With(domain.ErrMalformedResponse, "reason", "rows without columns header")
	}

	resp := &domain.Response{Fields: fields}
	for idx := range len(rows) {
		values, ok := rows[idx]
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrMalformedResponse, "reason", "non-contiguous row index"), "index", idx)
		}
		if len(values) != len(columns) {
			err := zerr.With(domain.ErrMalformedResponse, "reason", "row width does not match columns")
			err = zerr.With(err, "index", idx)
			err = zerr.With(err, "want", len(columns))
			err = zerr.With(err, "got", len(values))
			return nil, err
		}

		row := make(domain.Snapshot, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}
