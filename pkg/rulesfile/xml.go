package rulesfile

import (
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/beevik/etree"
)

// XML element and attribute names. The layout follows the carrier
// configuration files shipped with devices:
//
//	<carrier-restrictions default="not_allowed" multi-sim="none">
//	  <allowed>
//	    <carrier mcc="310" mnc="00?"/>
//	  </allowed>
//	  <excluded>
//	    <carrier mcc="310" mnc="001" gid1="ab"/>
//	  </excluded>
//	</carrier-restrictions>
const (
	xmlRoot     = "carrier-restrictions"
	xmlAllowed  = "allowed"
	xmlExcluded = "excluded"
	xmlCarrier  = "carrier"
	xmlDefault  = "default"
	xmlMultiSim = "multi-sim"
)

func decodeXML(data []byte) (*Document, error) {
	xdoc := etree.NewDocument()
	if err := xdoc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse XML rules")
	}

	root := xdoc.Root()
	if root == nil || root.Tag != xmlRoot {
		return nil, errors.Newf(errors.ErrConfigParse, "XML rules must have a <%s> root element", xmlRoot)
	}

	doc := &Document{
		Default:  DefaultValue(root.SelectAttrValue(xmlDefault, "")),
		MultiSim: MultiSimValue(root.SelectAttrValue(xmlMultiSim, "")),
	}

	for _, child := range root.ChildElements() {
		switch child.Tag {
		case xmlAllowed:
			entries, err := decodeXMLCarriers(child)
			if err != nil {
				return nil, err
			}
			doc.Allowed = append(doc.Allowed, entries...)
		case xmlExcluded:
			entries, err := decodeXMLCarriers(child)
			if err != nil {
				return nil, err
			}
			doc.Excluded = append(doc.Excluded, entries...)
		default:
			return nil, errors.Newf(errors.ErrConfigParse, "unexpected element <%s> in <%s>", child.Tag, xmlRoot).
				WithDetail("element", child.Tag)
		}
	}
	return doc, nil
}

func decodeXMLCarriers(list *etree.Element) ([]Entry, error) {
	var entries []Entry
	for _, el := range list.ChildElements() {
		if el.Tag != xmlCarrier {
			return nil, errors.Newf(errors.ErrConfigParse, "unexpected element <%s> in <%s>", el.Tag, list.Tag).
				WithDetail("element", el.Tag)
		}

		var id Entry
		for _, attr := range el.Attr {
			target := id.Identifier()
			if err := target.Set(attr.Key, attr.Value); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid attribute on <%s>", xmlCarrier)
			}
			id = EntryFrom(target)
		}
		entries = append(entries, id)
	}
	return entries, nil
}

func encodeXML(doc *Document) ([]byte, error) {
	xdoc := etree.NewDocument()
	xdoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xdoc.CreateElement(xmlRoot)
	root.CreateAttr(xmlDefault, string(doc.Default))
	root.CreateAttr(xmlMultiSim, string(doc.MultiSim))

	encodeXMLCarriers(root.CreateElement(xmlAllowed), doc.Allowed)
	encodeXMLCarriers(root.CreateElement(xmlExcluded), doc.Excluded)

	xdoc.Indent(2)
	data, err := xdoc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to write XML rules")
	}
	return data, nil
}

func encodeXMLCarriers(list *etree.Element, entries []Entry) {
	for _, e := range entries {
		el := list.CreateElement(xmlCarrier)
		id := e.Identifier()
		for _, name := range []string{"mcc", "mnc", "spn", "imsi", "gid1", "gid2"} {
			if v, _ := id.Get(name); v != "" {
				el.CreateAttr(name, v)
			}
		}
	}
}
