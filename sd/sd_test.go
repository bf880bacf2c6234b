package sd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFilename(p *Peripheral, name string) {
	for i := 0; i < len(name); i++ {
		p.Out(PortFilename, name[i])
	}
	p.Out(PortFilename, 0)
}

func TestCreateWriteCloseReadBack(t *testing.T) {
	dir := t.TempDir()
	p := New(dir)

	writeFilename(p, "hello.txt")
	p.Out(PortCommand, CmdCreate)
	if status, _ := p.In(PortStatus); status&StatusError != 0 {
		t.Fatalf("CREATE set ERROR, status=%#x", status)
	}
	for _, b := range []byte("hi") {
		p.Out(PortData, b)
	}
	p.Out(PortCommand, CmdClose)

	writeFilename(p, "hello.txt")
	p.Out(PortCommand, CmdOpenRead)
	var got []byte
	for {
		status, _ := p.In(PortStatus)
		if status&StatusData == 0 {
			break
		}
		b, _ := p.In(PortData)
		got = append(got, b)
	}
	if string(got) != "hi" {
		t.Fatalf("read back %q, want %q", got, "hi")
	}
}

func TestOpenReadMissingFileSetsError(t *testing.T) {
	p := New(t.TempDir())
	writeFilename(p, "nope.txt")
	p.Out(PortCommand, CmdOpenRead)
	status, _ := p.In(PortStatus)
	if status&StatusError == 0 {
		t.Fatalf("status=%#x, want ERROR set for a missing file", status)
	}
}

func TestDirListingSkipsDotEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := New(dir)
	p.Out(PortCommand, CmdDir)

	var got []byte
	for {
		status, _ := p.In(PortStatus)
		if status&StatusData == 0 {
			break
		}
		b, _ := p.In(PortData)
		got = append(got, b)
	}
	want := "a.txt\r\n"
	if string(got) != want {
		t.Fatalf("dir listing = %q, want %q", got, want)
	}
}

func TestSeekRegisterPositionsRead(t *testing.T) {
	dir := t.TempDir()
	p := New(dir)
	writeFilename(p, "seek.txt")
	p.Out(PortCommand, CmdCreate)
	for _, b := range []byte("0123456789") {
		p.Out(PortData, b)
	}
	p.Out(PortCommand, CmdClose)

	writeFilename(p, "seek.txt")
	p.Out(PortCommand, CmdOpenRW)
	p.Out(PortSeekLo, 5)
	p.Out(PortSeekHi, 0)
	p.Out(PortCommand, CmdSeekByte)
	b, _ := p.In(PortData)
	if b != '5' {
		t.Fatalf("byte at seek offset 5 = %q, want '5'", b)
	}
}

func TestSeekStartWithoutOpenFileIsError(t *testing.T) {
	p := New(t.TempDir())
	p.Out(PortCommand, CmdSeekStart)
	status, _ := p.In(PortStatus)
	if status&StatusError == 0 {
		t.Fatalf("SEEK_START with no open file: status=%#x, want ERROR", status)
	}
}
