package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/diatomic/internal/dynamo"
)

var csvHeader = []string{"time", "displacement", "distance", "potential", "kinetic", "total"}

// WriteCSV writes one row per sample with a header line.
func WriteCSV(w io.Writer, r *dynamo.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	row := make([]string, len(csvHeader))
	for i := 0; i < r.Len(); i++ {
		row[0] = formatFloat(r.Times[i])
		row[1] = formatFloat(r.Displacements[i])
		row[2] = formatFloat(r.Distances[i])
		row[3] = formatFloat(r.Potential[i])
		row[4] = formatFloat(r.Kinetic[i])
		row[5] = formatFloat(r.Total[i])
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
