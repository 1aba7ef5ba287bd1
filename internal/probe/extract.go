package probe

// extractionScript runs inside the page and returns the observed style facts
// for a sampled set of elements. Styles come from getComputedStyle so runtime
// overrides are captured; when an element's own background is transparent the
// ancestor chain is walked for the effective background, defaulting to white.
// Sampling order is category order then document order, so repeated probes of
// an unchanged page return identical fact lists.
//
// The single %d is the per-category sample cap.
const extractionScript = `(() => {
  const LIMIT = %d;
  const cap = (list) => Array.from(list).slice(0, LIMIT);
  const describe = (el) => {
    const tag = el.tagName.toLowerCase();
    if (el.id) return tag + '#' + el.id;
    if (el.classList.length > 0) return tag + '.' + el.classList[0];
    return tag;
  };
  const transparent = (bg) => !bg || bg === 'transparent' || /^rgba\(.*,\s*0\)$/.test(bg);
  const effectiveBackground = (el) => {
    let node = el;
    while (node && node !== document.documentElement) {
      const bg = getComputedStyle(node).backgroundColor;
      if (!transparent(bg)) return bg;
      node = node.parentElement;
    }
    return 'rgb(255, 255, 255)';
  };
  const px = (v) => {
    const n = parseFloat(v);
    return Number.isFinite(n) ? n : 0;
  };
  const factFor = (el, role) => {
    const cs = getComputedStyle(el);
    const rect = el.getBoundingClientRect();
    const aria = {};
    for (const attr of el.attributes) {
      if (attr.name === 'role' || attr.name.startsWith('aria-')) aria[attr.name] = attr.value;
    }
    return {
      element_ref: describe(el),
      role: role,
      computed_color: cs.color,
      computed_background: cs.backgroundColor,
      effective_background: effectiveBackground(el),
      font_size_px: px(cs.fontSize),
      font_weight: cs.fontWeight,
      box: { x: rect.x, y: rect.y, width: rect.width, height: rect.height },
      padding: { top: px(cs.paddingTop), right: px(cs.paddingRight), bottom: px(cs.paddingBottom), left: px(cs.paddingLeft) },
      margin: { top: px(cs.marginTop), right: px(cs.marginRight), bottom: px(cs.marginBottom), left: px(cs.marginLeft) },
      gap_px: px(cs.gap),
      border_radius_px: px(cs.borderRadius),
      aria_attributes: aria,
      text_content: (el.textContent || '').trim().slice(0, 120)
    };
  };
  const facts = [];
  const seen = new Set();
  const sample = (selector, role) => {
    for (const el of cap(document.querySelectorAll(selector))) {
      if (seen.has(el)) continue;
      seen.add(el);
      facts.push(factFor(el, role));
    }
  };
  sample('button, [role=button], input[type=button], input[type=submit]', 'button');
  sample('a[href]', 'link');
  sample('h1, h2, h3, h4, h5, h6', 'heading');
  sample('input:not([type=button]):not([type=submit]):not([type=hidden]), select, textarea', 'input');
  sample('img', 'image');
  sample('p, li, label', 'text');
  return facts;
})()`
