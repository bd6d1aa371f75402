package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leakgrep/leakgrep/internal/types"
)

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	stats := types.ScanStats{FilesScanned: 4, Findings: 1}
	err := WriteJSON(&buf, sample(), stats, 1500*time.Millisecond, "/repo", "0.1.0", false)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "leakgrep", doc["tool"])
	require.Equal(t, "0.1.0", doc["version"])
	require.Equal(t, "/repo", doc["scannedPath"])

	summary := doc["summary"].(map[string]any)
	require.EqualValues(t, 4, summary["filesScanned"])
	require.EqualValues(t, 1, summary["findings"])
	require.EqualValues(t, 1500, summary["durationMs"])

	findings := doc["findings"].([]any)
	require.Len(t, findings, 1)
	f := findings[0].(map[string]any)
	require.Equal(t, "STRIPE_LIVE", f["ruleId"])
	require.Equal(t, "****DEFG", f["preview"])
}

func TestWriteJSONRedact(t *testing.T) {
	var buf bytes.Buffer
	in := sample()
	err := WriteJSON(&buf, in, types.ScanStats{}, 0, "/repo", "0.1.0", true)
	require.NoError(t, err)

	var doc Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, RedactedMarker, doc.Findings[0].Preview)
	require.Equal(t, RedactedMarker, doc.Findings[0].Context)
	// The caller's slice is untouched.
	require.Equal(t, "****DEFG", in[0].Preview)
}
