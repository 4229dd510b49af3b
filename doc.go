// FILE: lixenwraith/xrmconfig/doc.go

// Package xrmconfig binds named, typed configuration options to caller-owned
// storage and fills them from an X resource database and the command line,
// with command-line values taking precedence.
//
// Features:
//   - Static option table declared up front, plus dynamic options registered at runtime
//   - Five option types: string, unsigned and signed integer, boolean, character
//   - Resource lookups under "<prefix>.<key>" in both name and class namespaces
//   - Launcher-style flags ("-lines 10", "-fixed-num-lines")
//   - Registry-owned string bookkeeping with a release hook
//   - Dump of the resolved configuration, one line per option
//   - Fluent Builder with post-resolution validators
//
// Quick Start:
//
//	settings := xrmconfig.DefaultSettings()
//	reg, err := xrmconfig.Quick(settings, "", os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reg.Close()
//
//	fmt.Println(settings.MenuLines)
//
// Dynamic options:
//
//	var modi string
//	reg := xrmconfig.New(xrmconfig.BuiltinOptions(settings)...)
//	_ = reg.Register(xrmconfig.TypeString, "combi-modi", &modi)
//	_ = reg.Load(xrdb.FileSource{Path: "~/.Xresources"}, os.Args[1:])
//
// Resolution order is fixed: static table from resources, static table from
// the command line, dynamic table from resources, dynamic table from the
// command line.
//
// Thread Safety:
// Registration, resolution and dumping are serialized by the registry. The
// destination cells belong to the caller and are not protected.
package xrmconfig
