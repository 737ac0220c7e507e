package spec

// HTMLInputElement is https://html.spec.whatwg.org/#htmlinputelement
type HTMLInputElement struct {
	element *Element

	inputType    string
	value        string
	valueDirty   bool
	checked      bool
	checkedDirty bool
}

func newHTMLInputElement(e *Element) *HTMLInputElement {
	return &HTMLInputElement{element: e, inputType: "text"}
}

// https://html.spec.whatwg.org/#dom-input-type
func (i *HTMLInputElement) InputType() string { return i.inputType }

// https://html.spec.whatwg.org/#dom-fe-disabled
func (i *HTMLInputElement) Disabled() bool {
	_, ok := i.element.Attributes.GetAttribute("", "disabled")
	return ok
}

func (i *HTMLInputElement) SetDisabled(disabled bool) {
	if disabled {
		i.element.Attributes.SetAttribute("", "disabled", "")
		return
	}
	i.element.Attributes.RemoveAttribute("", "disabled")
}

func (i *HTMLInputElement) Value() string { return i.value }

func (i *HTMLInputElement) SetValue(v string) {
	i.value = v
	i.valueDirty = true
}

func (i *HTMLInputElement) Checked() bool { return i.checked }

func (i *HTMLInputElement) SetChecked(c bool) {
	i.checked = c
	i.checkedDirty = true
}

func (i *HTMLInputElement) isCheckable() bool {
	return i.inputType == "checkbox" || i.inputType == "radio"
}

// inputAfterSetAttr tracks the content attributes that drive input state.
func inputAfterSetAttr(e *Element, attr *Attr) {
	if attr.Namespace != "" || e.HTMLElement == nil || e.HTMLInputElement == nil {
		return
	}
	i := e.HTMLInputElement
	switch attr.LocalName {
	case "type":
		i.inputType = asciiLowercase(attr.Value)
		if i.inputType == "" {
			i.inputType = "text"
		}
	case "value":
		if !i.valueDirty {
			i.value = attr.Value
		}
	case "checked":
		if !i.checkedDirty {
			i.checked = true
		}
	}
}

// SyntheticClickActivation runs the legacy pre-activation behavior of
// checkable inputs, fires click, and undoes the toggle if click was canceled.
// https://html.spec.whatwg.org/#the-input-element:legacy-pre-activation-behavior
func (i *HTMLInputElement) SyntheticClickActivation(ctrl, shift, alt, meta bool) {
	var old bool
	if i.isCheckable() {
		old = i.checked
		if i.inputType == "checkbox" {
			i.SetChecked(!i.checked)
		} else {
			i.SetChecked(true)
		}
	}

	ok := i.element.DispatchEvent(NewEvent("click", true))
	if !i.isCheckable() {
		return
	}
	if !ok {
		i.checked = old
		return
	}
	if i.checked != old {
		i.element.DispatchEvent(NewEvent("change", false))
	}
}
