// Package etree encodes docset metadata as an Apple property list.
package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/dashdoc"
)

// Ensure InfoEncoder implements dashdoc.InfoEncoder at compile time.
var _ dashdoc.InfoEncoder = (*InfoEncoder)(nil)

// InfoEncoder writes Info.plist documents with etree.
type InfoEncoder struct{}

// NewInfoEncoder creates a new InfoEncoder.
func NewInfoEncoder() *InfoEncoder {
	return &InfoEncoder{}
}

// EncodeInfo returns the Info.plist for info.
func (e *InfoEncoder) EncodeInfo(info *dashdoc.DocsetInfo) ([]byte, error) {
	if info.Identifier == "" {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "docset identifier required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	name := info.Name
	if name == "" {
		name = info.Identifier
	}
	family := info.PlatformFamily
	if family == "" {
		family = dashdoc.DefaultPlatformFamily
	}

	addString(dict, "CFBundleIdentifier", info.Identifier)
	addString(dict, "CFBundleName", name)
	addString(dict, "DocSetPlatformFamily", family)
	addBool(dict, "isDashDocset", true)
	if info.IndexFile != "" {
		addString(dict, "dashIndexFilePath", info.IndexFile)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func addString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func addBool(dict *etree.Element, key string, value bool) {
	dict.CreateElement("key").SetText(key)
	if value {
		dict.CreateElement("true")
	} else {
		dict.CreateElement("false")
	}
}
