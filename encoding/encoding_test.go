package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	known := []string{
		"UTF-8", "utf8", "ISO-8859-1", "Shift_JIS", "euc-jp", "EUC-KR",
		"windows-1251", "KOI8-R", "UTF-16",
	}
	for _, name := range known {
		require.NotNil(t, Load(name), "Load should resolve %q", name)
	}

	unknown := []string{"", "ebcdic-cp-us", "x-no-such-encoding"}
	for _, name := range unknown {
		require.Nil(t, Load(name), "Load should not resolve %q", name)
	}
}

func TestISO88591RoundTrip(t *testing.T) {
	e := Load("iso-8859-1")
	require.NotNil(t, e, "Load should resolve iso-8859-1")

	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		// the registry resolves iso-8859-1 to windows-1252, which remaps
		// the 0x80-0x9f C1 controls; skip them
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)

		v1, err := enc.String(s)
		require.NoError(t, err, "encode %q", s)
		require.Equal(t, v, v1, "round trip %#x", i)
	}
}

func TestIsUTF8Compatible(t *testing.T) {
	require.True(t, IsUTF8Compatible(""), "absent encoding is UTF-8")
	require.True(t, IsUTF8Compatible("UTF-8"), "utf-8 is compatible")
	require.True(t, IsUTF8Compatible("us-ascii"), "ascii is a subset")
	require.False(t, IsUTF8Compatible("Shift_JIS"), "sjis needs transcoding")
}
