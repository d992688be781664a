package render

import (
	"fmt"
	"html/template"
	"io"

	"timeline2html/timeline"
)

// PanelID is the element id of the side panel that receives event details.
const PanelID = "message"

// PageOptions controls the standalone HTML page.
type PageOptions struct {
	Title    string // Document title
	TargetID string // Id of the element the drawing is inserted into
	Sanitize bool   // Sanitize event content embedded in the panel
}

// pageScript is handed to the page script as JSON.
type pageScript struct {
	Color         string  `json:"color"`
	Background    string  `json:"background"`
	Radius        float64 `json:"radius"`
	HoverRadius   float64 `json:"hoverRadius"`
	Margin        float64 `json:"margin"`
	TooltipOffset float64 `json:"tooltipOffset"`
	Opacity       float64 `json:"opacity"`
	TransitionMS  int64   `json:"transitionMs"`
	PanelID       string  `json:"panelId"`
}

type pageData struct {
	Title    string
	TargetID string
	PanelID  string
	SVG      template.HTML
	Script   pageScript
}

// WritePage renders a self-contained HTML page for the layout: the drawing,
// a floating tooltip and the side panel, wired for hover and click.
func WritePage(w io.Writer, l *timeline.Layout, opts PageOptions) error {
	if opts.Title == "" {
		opts.Title = "Timeline"
	}
	if opts.TargetID == "" {
		opts.TargetID = "timeline"
	}

	cfg := l.Config
	data := pageData{
		Title:    opts.Title,
		TargetID: opts.TargetID,
		PanelID:  PanelID,
		// The SVG is generated with every attribute escaped.
		SVG: template.HTML(SVG(l, SVGOptions{Interactive: true, Sanitize: opts.Sanitize})),
		Script: pageScript{
			Color:         cfg.Color,
			Background:    cfg.Background,
			Radius:        cfg.Radius,
			HoverRadius:   l.HoverRadius(),
			Margin:        l.Scale.Margin,
			TooltipOffset: cfg.TooltipOffset,
			Opacity:       timeline.TooltipOpacity,
			TransitionMS:  cfg.Transition.Milliseconds(),
			PanelID:       PanelID,
		},
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Parse(tmplPage))

const tmplPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
body{font-family:Helvetica,Arial,sans-serif;margin:25px}
.timeline-container{position:relative}
.timeline-label{font-size:12px}
.timeline-event{cursor:pointer}
.tooltip{position:absolute;left:0;top:0;opacity:0;pointer-events:none;background:#fff;border:1px solid #ccc;border-radius:3px;padding:2px 6px;white-space:nowrap}
#message{margin-top:20px}
</style>
</head>
<body>
<div id="{{.TargetID}}" class="timeline-container">
<div class="tooltip"></div>
{{.SVG}}
</div>
<div id="{{.PanelID}}"></div>
<script>
(function () {
  var cfg = {{.Script}};
  var root = document.getElementById({{.TargetID}});
  var svg = root.querySelector('svg');
  var tip = root.querySelector('.tooltip');
  var panel = document.getElementById(cfg.panelId);
  var fade = 'opacity ' + cfg.transitionMs + 'ms';

  function grow(el, r) {
    var from = parseFloat(el.getAttribute('r'));
    var start = null;
    function step(ts) {
      if (start === null) start = ts;
      var k = cfg.transitionMs > 0 ? Math.min(1, (ts - start) / cfg.transitionMs) : 1;
      el.setAttribute('r', from + (r - from) * k);
      if (k < 1) requestAnimationFrame(step);
    }
    requestAnimationFrame(step);
  }

  svg.querySelectorAll('circle.timeline-event').forEach(function (el) {
    el.addEventListener('mouseover', function () {
      el.style.fill = cfg.color;
      grow(el, cfg.hoverRadius);
      panel.innerHTML = el.dataset.panel;
      tip.innerHTML = el.dataset.tooltip;
      tip.style.left = el.getAttribute('cx') + 'px';
      tip.style.top = el.getAttribute('cy') + 'px';
      tip.style.transition = fade;
      tip.style.opacity = cfg.opacity;
    });
    el.addEventListener('mouseout', function () {
      el.style.fill = cfg.background;
      grow(el, cfg.radius);
      tip.style.transition = fade;
      tip.style.opacity = 0;
    });
    el.addEventListener('click', function () {
      panel.innerHTML = el.dataset.panel;
    });
  });

  svg.addEventListener('mousemove', function (ev) {
    if (parseFloat(tip.style.opacity || '0') === 0) return;
    var box = root.getBoundingClientRect();
    tip.style.top = (ev.clientY - box.top - tip.offsetHeight - cfg.margin) + 'px';
    tip.style.left = (ev.clientX - box.left + cfg.tooltipOffset) + 'px';
  });
  svg.addEventListener('mouseleave', function () {
    tip.style.transition = 'none';
    tip.style.opacity = 0;
    tip.style.left = 0;
    tip.style.top = 0;
  });
})();
</script>
</body>
</html>
`
