package tmx

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/beevik/etree"

	"github.com/ekohilas/train-conductor-world-tools/logging"
)

// Map is an open .tmx document.
type Map struct {
	filename      string
	doc           *etree.Document
	width, height int
}

// Open parses filename and reads the map size.
func Open(filename string) (*Map, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filename); err != nil {
		return nil, fmt.Errorf("tmx: reading %s: %w", filename, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "map" {
		return nil, fmt.Errorf("%w: %s has no <map> root", ErrMalformed, filename)
	}
	w, err := intAttr(root, "width")
	if err != nil {
		return nil, err
	}
	h, err := intAttr(root, "height")
	if err != nil {
		return nil, err
	}
	return &Map{filename: filename, doc: doc, width: w, height: h}, nil
}

func (m *Map) Filename() string { return m.filename }
func (m *Map) Width() int       { return m.width }
func (m *Map) Height() int      { return m.height }

// LayerData returns the tile ids of the top-level tile layer called name.
func (m *Map) LayerData(name string) ([][]int, error) {
	el := findLayer(m.doc.Root(), tagTileLayer, name, 0)
	if el == nil {
		return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
	}
	l, err := tileLayerFrom(el)
	if err != nil {
		return nil, err
	}
	return l.Data, nil
}

// Layer returns the top-level tile or group layer called name.
func (m *Map) Layer(name string) (Layer, error) {
	root := m.doc.Root()
	if el := findLayer(root, tagTileLayer, name, 0); el != nil {
		return tileLayerFrom(el)
	}
	if el := findLayer(root, tagGroupLayer, name, 0); el != nil {
		return groupLayerFrom(el)
	}
	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
}

// AddLayer adds or updates l at the top level of the map.
func (m *Map) AddLayer(l Layer) error {
	return m.addLayer(m.doc.Root(), l)
}

// Save writes the document back to its file.
func (m *Map) Save() error {
	logging.Infof("Saving to %s...", m.filename)
	if err := m.doc.WriteToFile(m.filename); err != nil {
		return fmt.Errorf("tmx: writing %s: %w", m.filename, err)
	}
	logging.Infof("Saved!")
	return nil
}

// SaveLayers adds each layer, then saves.
func (m *Map) SaveLayers(layers ...Layer) error {
	for _, l := range layers {
		if err := m.AddLayer(l); err != nil {
			return err
		}
	}
	return m.Save()
}

func (m *Map) addLayer(parent *etree.Element, l Layer) error {
	switch l := l.(type) {
	case *TileLayer:
		if l.Width() != m.width || l.Height() != m.height {
			return fmt.Errorf("%w: layer %q is %dx%d, map is %dx%d", ErrDimensionMismatch,
				l.Name, l.Width(), l.Height(), m.width, m.height)
		}
		if el := findLayer(parent, tagTileLayer, l.Name, l.ID); el != nil {
			data := el.SelectElement("data")
			if data == nil {
				data = el.CreateElement("data")
				data.CreateAttr("encoding", "csv")
			}
			data.SetText(EncodeCSV(l.Data))
			return nil
		}
		el, err := m.appendLayer(parent, tagTileLayer, l.Name, l.Locked)
		if err != nil {
			return err
		}
		el.CreateAttr("width", strconv.Itoa(m.width))
		el.CreateAttr("height", strconv.Itoa(m.height))
		data := el.CreateElement("data")
		data.CreateAttr("encoding", "csv")
		data.SetText(EncodeCSV(l.Data))
		return nil

	case *GroupLayer:
		el := findLayer(parent, tagGroupLayer, l.Name, l.ID)
		if el == nil {
			var err error
			if el, err = m.appendLayer(parent, tagGroupLayer, l.Name, l.Locked); err != nil {
				return err
			}
		}
		for _, child := range slices.Backward(l.Layers) {
			if err := m.addLayer(el, child); err != nil {
				return fmt.Errorf("group %q: %w", l.Name, err)
			}
		}
		return nil
	}
	return fmt.Errorf("tmx: unsupported layer type %T", l)
}

// appendLayer creates a layer element under parent with the next layer id.
func (m *Map) appendLayer(parent *etree.Element, tag, name string, locked bool) (*etree.Element, error) {
	root := m.doc.Root()
	id, err := intAttr(root, nextLayerIDAttr)
	if err != nil {
		return nil, err
	}
	root.CreateAttr(nextLayerIDAttr, strconv.Itoa(id+1))

	el := parent.CreateElement(tag)
	el.CreateAttr("id", strconv.Itoa(id))
	el.CreateAttr("name", name)
	el.CreateAttr("locked", boolAttr(locked))
	return el, nil
}

// findLayer returns the direct child of parent with the given tag matching
// name, or id when id is set.
func findLayer(parent *etree.Element, tag, name string, id int) *etree.Element {
	for _, el := range parent.SelectElements(tag) {
		if el.SelectAttrValue("name", "") == name {
			return el
		}
		if id > 0 && el.SelectAttrValue("id", "") == strconv.Itoa(id) {
			return el
		}
	}
	return nil
}

func tileLayerFrom(el *etree.Element) (*TileLayer, error) {
	id, err := intAttr(el, "id")
	if err != nil {
		return nil, err
	}
	data := el.SelectElement("data")
	if data == nil {
		return nil, fmt.Errorf("%w: layer %d has no data", ErrMalformed, id)
	}
	if enc := data.SelectAttrValue("encoding", ""); enc != "csv" {
		return nil, fmt.Errorf("%w: layer %d encoding %q, want csv", ErrMalformed, id, enc)
	}
	grid, err := DecodeCSV(data.Text())
	if err != nil {
		return nil, fmt.Errorf("layer %d: %w", id, err)
	}
	return &TileLayer{
		ID:     id,
		Name:   el.SelectAttrValue("name", ""),
		Locked: el.SelectAttrValue("locked", "0") == "1",
		Data:   grid,
	}, nil
}

func groupLayerFrom(el *etree.Element) (*GroupLayer, error) {
	id, err := intAttr(el, "id")
	if err != nil {
		return nil, err
	}
	g := &GroupLayer{
		ID:     id,
		Name:   el.SelectAttrValue("name", ""),
		Locked: el.SelectAttrValue("locked", "0") == "1",
	}
	for _, child := range el.ChildElements() {
		var (
			l   Layer
			err error
		)
		switch child.Tag {
		case tagTileLayer:
			l, err = tileLayerFrom(child)
		case tagGroupLayer:
			l, err = groupLayerFrom(child)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		g.Layers = append(g.Layers, l)
	}
	return g, nil
}

func intAttr(el *etree.Element, key string) (int, error) {
	raw := el.SelectAttrValue(key, "")
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> attribute %s=%q", ErrMalformed, el.Tag, key, raw)
	}
	return v, nil
}

func boolAttr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
