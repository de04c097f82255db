package dom

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// LoadSnapshot builds a Record tree from a JSON layout snapshot. The
// expected shape per node is:
//
//	{
//	  "tag": "div",
//	  "label": "Card",
//	  "classes": ["card"],
//	  "text": "Hello",
//	  "rect": {"x": 0, "y": 0, "width": 120, "height": 40},
//	  "style": {"display": "flex", "backgroundColor": "#fff", ...},
//	  "children": [ ... ]
//	}
//
// Absent fields degrade to zero values; only structurally invalid JSON is
// an error.
func LoadSnapshot(data []byte) (*Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("load snapshot: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("load snapshot: root must be an object")
	}
	return recordFromJSON(root), nil
}

func recordFromJSON(v gjson.Result) *Record {
	r := &Record{
		Tag:     v.Get("tag").String(),
		Aria:    v.Get("label").String(),
		TextRun: v.Get("text").String(),
		Box: Rect{
			X:      v.Get("rect.x").Float(),
			Y:      v.Get("rect.y").Float(),
			Width:  v.Get("rect.width").Float(),
			Height: v.Get("rect.height").Float(),
		},
		Computed: styleFromJSON(v.Get("style")),
	}

	for _, class := range v.Get("classes").Array() {
		r.Class = append(r.Class, class.String())
	}
	for _, child := range v.Get("children").Array() {
		r.Kids = append(r.Kids, recordFromJSON(child))
	}
	return r
}

func styleFromJSON(v gjson.Result) Style {
	return Style{
		Display:        v.Get("display").String(),
		FlexDirection:  v.Get("flexDirection").String(),
		Gap:            v.Get("gap").String(),
		PaddingTop:     v.Get("paddingTop").String(),
		PaddingRight:   v.Get("paddingRight").String(),
		PaddingBottom:  v.Get("paddingBottom").String(),
		PaddingLeft:    v.Get("paddingLeft").String(),
		JustifyContent: v.Get("justifyContent").String(),
		AlignItems:     v.Get("alignItems").String(),

		BackgroundColor: v.Get("backgroundColor").String(),
		BackgroundImage: v.Get("backgroundImage").String(),
		BorderWidth:     v.Get("borderWidth").String(),
		BorderColor:     v.Get("borderColor").String(),
		BorderRadius:    v.Get("borderRadius").String(),
		BoxShadow:       v.Get("boxShadow").String(),
		Opacity:         v.Get("opacity").String(),
		Visibility:      v.Get("visibility").String(),

		Color:      v.Get("color").String(),
		FontFamily: v.Get("fontFamily").String(),
		FontSize:   v.Get("fontSize").String(),
		FontWeight: v.Get("fontWeight").String(),
		TextAlign:  v.Get("textAlign").String(),
		TextShadow: v.Get("textShadow").String(),
	}
}
