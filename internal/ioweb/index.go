package ioweb

const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>National Park Species Observations</title>
  <script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px 32px;
      background: #111;
      color: #fff;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    }
    h1 { font-weight: 600; margin: 0 0 24px; }
    .controls { display: flex; gap: 48px; flex-wrap: wrap; margin-bottom: 16px; }
    label.title { display: block; font-weight: 600; margin-bottom: 8px; }
    select {
      min-width: 360px;
      min-height: 140px;
      background: #222;
      color: #fff;
      border: 1px solid #444;
      padding: 4px;
    }
    .checklist label { display: inline-block; margin: 0 16px 6px 0; }
    #status { color: #999; font-size: 0.85rem; margin-bottom: 8px; }
  </style>
</head>
<body>
  <h1>National Park Species Observations</h1>
  <div class="controls">
    <div>
      <label class="title" for="parks">Select Park(s)</label>
      <select id="parks" multiple></select>
    </div>
    <div>
      <label class="title">Select Category(ies)</label>
      <div class="checklist" id="categories"></div>
    </div>
  </div>
  <div id="status">Connecting…</div>
  <div id="chart"></div>
<script>
(function(){
  const parks = document.getElementById('parks');
  const cats = document.getElementById('categories');
  const status = document.getElementById('status');
  let ws = null;
  let pending = null;

  function selection() {
    const p = Array.from(parks.selectedOptions).map(o => o.value);
    const c = Array.from(cats.querySelectorAll('input:checked')).map(i => i.value);
    return {parks: p, categories: c};
  }

  function send() {
    const msg = JSON.stringify(selection());
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(msg);
    } else {
      pending = msg;
    }
  }

  function connect() {
    const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    ws = new WebSocket(proto + '//' + location.host + '/ws');
    ws.onopen = function() {
      status.textContent = 'Connected';
      ws.send(pending || JSON.stringify(selection()));
      pending = null;
    };
    ws.onmessage = function(ev) {
      const fig = JSON.parse(ev.data);
      Plotly.react('chart', fig.data, fig.layout, {responsive: true});
    };
    ws.onclose = function() {
      status.textContent = 'Disconnected, retrying…';
      setTimeout(connect, 2000);
    };
  }

  fetch('/api/options').then(r => r.json()).then(function(opts) {
    const defParks = new Set(opts.defaults.parks || []);
    (opts.parks || []).forEach(function(p) {
      const o = document.createElement('option');
      o.value = p;
      o.textContent = p;
      o.selected = defParks.has(p);
      parks.appendChild(o);
    });
    const defCats = new Set(opts.defaults.categories || []);
    (opts.categories || []).forEach(function(c) {
      const l = document.createElement('label');
      const i = document.createElement('input');
      i.type = 'checkbox';
      i.value = c;
      i.checked = defCats.has(c);
      i.addEventListener('change', send);
      l.appendChild(i);
      l.appendChild(document.createTextNode(' ' + c));
      cats.appendChild(l);
    });
    parks.addEventListener('change', send);
    connect();
  });
})();
</script>
</body>
</html>
`
