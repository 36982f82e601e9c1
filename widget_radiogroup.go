package gui

// RadioGroup draws a titled group of radio buttons arranged vertically,
// one per item, binding the selected item's index.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	ctx.RadioGroup("Quality", &selectedIndex, items)
func (ctx *Context) RadioGroup(label string, selectedIndex *int, items []string) {
	ctx.radioGroup(label, selectedIndex, items, false)
}

// RadioGroupHorizontal is RadioGroup with the buttons on one line.
func (ctx *Context) RadioGroupHorizontal(label string, selectedIndex *int, items []string) {
	ctx.radioGroup(label, selectedIndex, items, true)
}

func (ctx *Context) radioGroup(label string, selectedIndex *int, items []string, horizontal bool) {
	if label != "" {
		ctx.TextLine(label)
	}

	// Items are scoped under the group label so "On"/"Off" can repeat
	// across groups.
	ctx.PushID(label)
	for i, item := range items {
		if horizontal && i > 0 {
			ctx.SameLine()
		}
		ctx.RadioButton(item, selectedIndex, i)
	}
	ctx.PopID()
}
