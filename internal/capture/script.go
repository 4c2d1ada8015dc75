package capture

import "fmt"

// styleProps are the inline style properties the adapter overrides while
// the target is being captured. Restoration must cover exactly this set.
var styleProps = []string{"position", "left", "top", "z-index", "transform", "width", "height"}

const savedStylesSlot = "__invoiceCaptureSaved"

// presenceScript reports whether the capture target exists
func presenceScript(selector string) string {
	return fmt.Sprintf(`document.querySelector(%q) !== null`, selector)
}

// stabilizeScript records the target's inline style values for the
// overridden properties (null for properties with no inline value), then
// pins the target to a natural top-left absolute position so ancestor
// transforms and scroll offsets cannot distort the capture. The recorded
// values are parked on window for the restore pass and also returned.
func stabilizeScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	if (!el) { return null; }
	const props = %s;
	const saved = {};
	for (const p of props) {
		const v = el.style.getPropertyValue(p);
		saved[p] = v === "" ? null : v;
	}
	window.%s = saved;
	el.style.setProperty("position", "absolute");
	el.style.setProperty("left", "0");
	el.style.setProperty("top", "0");
	el.style.setProperty("z-index", "9999");
	el.style.setProperty("transform", "none");
	window.scrollTo(0, 0);
	return saved;
})()`, selector, jsStringArray(styleProps), savedStylesSlot)
}

// measureScript returns the scroll-content dimensions of the target, not
// the viewport, so content below the fold is included.
func measureScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	if (!el) { return null; }
	return { width: el.scrollWidth, height: el.scrollHeight };
})()`, selector)
}

// restoreScript puts every overridden property back to its exact prior
// value. Properties that had no inline value are removed rather than set
// to an empty string, so "unset" is restored as unset.
func restoreScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	const saved = window.%s;
	if (!el || !saved) { return false; }
	for (const p of Object.keys(saved)) {
		const v = saved[p];
		if (v === null) {
			el.style.removeProperty(p);
		} else {
			el.style.setProperty(p, v);
		}
	}
	delete window.%s;
	return true;
})()`, selector, savedStylesSlot, savedStylesSlot)
}

func jsStringArray(items []string) string {
	out := "["
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", it)
	}
	return out + "]"
}
