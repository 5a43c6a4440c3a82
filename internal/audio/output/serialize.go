// Package output writes packed ADPCM streams to disk.
package output

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"wav2adpcm/internal/audio/config"
)

// DefaultArrayName is used when nothing usable remains of the file name.
const DefaultArrayName = "adpcm_data"

// Serialize writes data to w in the given form. name is the array
// symbol for the text forms and ignored for binary.
func Serialize(w io.Writer, form config.OutputForm, name string, data []byte) error {
	switch form {
	case config.FormBinary, "":
		_, err := w.Write(data)
		return err
	case config.FormC:
		return writeC(w, name, data)
	case config.FormAsm:
		return writeAsm(w, name, data)
	}
	return fmt.Errorf("unknown output form %q", form)
}

func writeC(w io.Writer, name string, data []byte) error {
	bw := bufio.NewWriter(w)
	guard := strings.ToUpper(name) + "_H"

	fmt.Fprintf(bw, "// %s: %d bytes\n", name, len(data))
	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(bw, "unsigned char %s[] = {\n", name)
	for line := range chunks(data) {
		bw.WriteByte('\t')
		for _, v := range line {
			fmt.Fprintf(bw, "0x%02X,", v)
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("};\n\n#endif\n")
	return bw.Flush()
}

func writeAsm(w io.Writer, name string, data []byte) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "* %s: %d bytes\n", name, len(data))
	fmt.Fprintf(bw, "\t.data\n\t.even\n\t.globl\t_%s\n_%s:\n", name, name)
	for line := range chunks(data) {
		bw.WriteString("\t.dc.b\t")
		for i, v := range line {
			if i > 0 {
				bw.WriteByte(',')
			}
			fmt.Fprintf(bw, "$%02X", v)
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("\t.even\n")
	return bw.Flush()
}

// chunks yields data in runs of config.ValuesPerLine bytes.
func chunks(data []byte) func(yield func([]byte) bool) {
	return func(yield func([]byte) bool) {
		for len(data) > 0 {
			n := min(config.ValuesPerLine, len(data))
			if !yield(data[:n]) {
				return
			}
			data = data[n:]
		}
	}
}

// ArrayName derives a C identifier from the base name of path.
func ArrayName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}

	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, base)
	if name == "" {
		return DefaultArrayName
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
