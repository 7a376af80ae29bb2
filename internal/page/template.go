// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

// pageTemplate is the html/template for the converter page. The script keeps
// one websocket session per tab; every edit is sent to the server with a
// sequence number and only the reply to the latest request is written back
// into all four fields.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Meta.Title}}</title>
  <meta name="description" content="{{.Meta.Description}}">
  <meta name="keywords" content="{{.Keywords}}">
  <meta name="author" content="{{.Meta.Author}}">
  <meta name="robots" content="{{.Meta.Robots}}">
  <link rel="canonical" href="{{.Meta.CanonicalURL}}">
  <meta property="og:type" content="website">
  <meta property="og:locale" content="{{.Meta.Locale}}">
  <meta property="og:url" content="{{.Meta.CanonicalURL}}">
  <meta property="og:site_name" content="{{.Meta.SiteName}}">
  <meta property="og:title" content="{{.Meta.OGTitle}}">
  <meta property="og:description" content="{{.Meta.OGDescription}}">
  <meta property="og:image" content="{{.Meta.OGImage}}">
  <meta name="twitter:card" content="{{.Meta.TwitterCard}}">
  <meta name="twitter:title" content="{{.Meta.TwitterTitle}}">
  <meta name="twitter:description" content="{{.Meta.TwitterDescription}}">
  <script type="application/ld+json">{{.JSONLD}}</script>
  <style>
    body { margin: 0; font-family: system-ui, sans-serif; background: #f8fafc; color: #0f172a; }
    header, footer, section, main { padding: 1.5rem; }
    header { background: #fff; border-bottom: 1px solid #e2e8f0; display: flex; justify-content: space-between; align-items: center; }
    header nav a { margin-left: 1.5rem; color: #475569; text-decoration: none; }
    main { max-width: 48rem; margin: 0 auto; }
    .field { background: #fff; border: 1px solid #e2e8f0; border-radius: .75rem; padding: 1rem; margin-bottom: 1rem; }
    .field.active { border-color: #c4b5fd; box-shadow: 0 0 0 2px #ede9fe; }
    .field input { width: 100%; font: 1.125rem monospace; padding: .5rem; box-sizing: border-box; }
    .field .prefix { color: #94a3b8; font-family: monospace; }
    .features { display: grid; grid-template-columns: repeat(auto-fit, minmax(14rem, 1fr)); gap: 1rem; }
    .feature, .faq { background: #fff; border: 1px solid #e2e8f0; border-radius: .75rem; padding: 1rem; }
    footer { background: #0f172a; color: #94a3b8; display: flex; justify-content: space-between; }
    footer a { color: #94a3b8; margin-left: 1rem; }
  </style>
</head>
<body>
  <header>
    <div>
      <h1>{{.Meta.SiteName}}</h1>
      <p>{{.Tagline}}</p>
    </div>
    <nav>
      <a href="#tool">Tool</a>
      <a href="#features">Features</a>
      <a href="#faq">FAQ</a>
    </nav>
  </header>

  <section class="hero">
    <h2>{{.Heading}}</h2>
    <p>{{.Intro}}</p>
  </section>

  <main id="tool">
    <button type="button" id="clear-all">Clear All</button>
    {{range .Fields}}
    <div class="field" data-base="{{printf "%d" .Base}}" data-prefix="{{.Prefix}}">
      <label>
        <strong>{{.Name}}</strong> <small>(Base {{printf "%d" .Base}})</small>
        {{if .Prefix}}<span class="prefix">{{.Prefix}}</span>{{end}}
      </label>
      <button type="button" class="copy" hidden>Copy</button>
      <input type="text" autocomplete="off" spellcheck="false" placeholder="{{.Placeholder}}">
    </div>
    {{end}}
  </main>

  <section id="features">
    <h2>Why Use Our Base Converter?</h2>
    <div class="features">
      {{range .Features}}
      <div class="feature">
        <div>{{.Icon}}</div>
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
      </div>
      {{end}}
    </div>
  </section>

  <section id="faq">
    <h2>Frequently Asked Questions</h2>
    {{range .FAQ}}
    <div class="faq">
      <h3>{{.Question}}</h3>
      {{.Answer}}
    </div>
    {{end}}
  </section>

  <footer>
    <span>{{.Meta.SiteName}}</span>
    <p>{{.Copyright}}</p>
    <div><a href="/privacy">Privacy</a><a href="/terms">Terms</a></div>
  </footer>

  <script>
  (function () {
    var fields = Array.prototype.slice.call(document.querySelectorAll(".field"));
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    var pending = [];
    var sent = 0;

    function send(msg) {
      sent += 1;
      msg.seq = sent;
      var data = JSON.stringify(msg);
      if (ws.readyState === WebSocket.OPEN) {
        ws.send(data);
      } else if (ws.readyState === WebSocket.CONNECTING) {
        pending.push(data);
      }
    }

    ws.onopen = function () {
      pending.forEach(function (data) { ws.send(data); });
      pending = [];
    };

    function render(snap) {
      var byBase = {};
      (snap.values || []).forEach(function (v) { byBase[v.base] = v; });
      fields.forEach(function (f) {
        var base = Number(f.dataset.base);
        var input = f.querySelector("input");
        var copy = f.querySelector(".copy");
        var v = byBase[base];
        input.value = v ? v.digits : "";
        f.classList.toggle("active", base === snap.last_edited);
        copy.hidden = !v;
        copy.dataset.literal = v ? v.literal : "";
        copy.textContent = "Copy";
      });
    }

    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.error || msg.seq < sent) { return; }
      render(msg);
    };

    fields.forEach(function (f) {
      var base = Number(f.dataset.base);
      f.querySelector("input").addEventListener("input", function (ev) {
        send({ type: "edit", base: base, text: ev.target.value });
      });
      f.querySelector(".copy").addEventListener("click", function (ev) {
        var btn = ev.target;
        if (navigator.clipboard) { navigator.clipboard.writeText(btn.dataset.literal).catch(function () {}); }
        btn.textContent = "Copied!";
        setTimeout(function () { btn.textContent = "Copy"; }, 2000);
      });
    });

    document.getElementById("clear-all").addEventListener("click", function () {
      send({ type: "clear" });
    });
  })();
  </script>
</body>
</html>
`
