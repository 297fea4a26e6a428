package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/argon-xml/argon"
	"github.com/argon-xml/argon/encoding"
)

type cmdopts struct {
	Chunk    int  `long:"chunk" default:"64" description:"bytes pushed per write"`
	Capacity int  `long:"capacity" default:"1024" description:"reader buffer capacity in scalars"`
	Quiet    bool `short:"q" long:"quiet" description:"only report errors"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Printf(`Usage : argon-events [options] XMLfiles ...
	Stream the XML files through the pull reader and print one line
	per document event
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	var inputs []io.Reader
	var names []string
	if len(args) > 0 {
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
			names = append(names, f)
		}
	} else {
		inputs = append(inputs, os.Stdin)
		names = append(names, "<stdin>")
	}

	for i, in := range inputs {
		if err := dumpEvents(in, &opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", names[i], err)
			return 1
		}
	}
	return 0
}

func dumpEvents(in io.Reader, opts *cmdopts) error {
	r := argon.NewReaderSize(opts.Capacity)
	chunk := make([]byte, opts.Chunk)
	var pending []byte
	eof := false

	emit := func(f string, args ...interface{}) {
		if !opts.Quiet {
			fmt.Printf(f+"\n", args...)
		}
	}

	for {
		res := r.Parse()
		switch res {
		case argon.ResultNeedMoreData:
			if len(pending) == 0 {
				if eof {
					return fmt.Errorf("document incomplete at end of input")
				}
				n, err := in.Read(chunk)
				pending = chunk[:n]
				if err == io.EOF {
					eof = true
				} else if err != nil {
					return err
				}
			}
			// a short write means the sink is full; the next parse
			// cycle drains it
			accepted := r.WriteData(pending)
			pending = pending[accepted:]

		case argon.ResultXMLDeclaration:
			decl := r.XMLDeclaration()
			note := ""
			if !encoding.IsUTF8Compatible(decl.Encoding) {
				if encoding.Load(decl.Encoding) != nil {
					note = " (needs transcoding)"
				} else {
					note = " (unknown encoding)"
				}
			}
			emit("xml-declaration version=%q encoding=%q standalone=%q%s",
				decl.Version, decl.Encoding, decl.Standalone, note)

		case argon.ResultProcessingInstruction:
			pi := r.ProcessingInstruction()
			emit("processing-instruction target=%q data=%q", pi.Target, pi.Data)

		case argon.ResultDocumentType:
			emit("doctype name=%q", r.DocumentType().Name)

		case argon.ResultComment:
			emit("comment %q", r.Comment())

		case argon.ResultCData:
			emit("cdata %q", r.CData())

		case argon.ResultStartOfElement:
			elem := r.StartOfElement()
			emit("start-element name=%q attrs=%d depth=%d", elem.Name, len(elem.Attributes), r.Depth())

		case argon.ResultEndOfElement:
			emit("end-element name=%q depth=%d", r.EndOfElement().Name, r.Depth())

		case argon.ResultTextNode:
			emit("text %q", r.Text())

		case argon.ResultEndOfDocument:
			emit("end-of-document")
			return nil

		case argon.ResultError:
			return r.Err()

		default:
			return fmt.Errorf("unexpected parsing result %s", res)
		}
	}
}
