package sjson_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-sjson"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	seedFiles, err := filepath.Glob("testdata/*.sjson")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("{}"))
	f.Add([]byte("[]"))
	f.Add([]byte("null"))
	f.Add([]byte(`"a // string"`))
	f.Add([]byte("-12345"))
	f.Add([]byte("1.5e-3"))
	f.Add([]byte("true // comment"))

	f.Fuzz(func(t *testing.T, data []byte) {
		v1, err := sjson.Parse(data)
		if err != nil {
			// Invalid input only has to fail without panicking.
			return
		}

		// A tree the parser built always has a text form.
		out1, err := sjson.Marshal(v1)
		require.NoError(t, err, "Marshal failed for a parsed value")

		v2, err := sjson.Parse(out1)
		require.NoError(t, err, "Parse failed on marshaled output:\n%s", out1)
		require.True(t, v1.Equal(v2), "value changed after round trip:\n%s", out1)

		out2, err := sjson.Marshal(v2)
		require.NoError(t, err)
		require.Equal(t, string(out1), string(out2), "marshaled output is not stable")
	})
}
