package site

// homeTemplate is the landing page with the three listing regions.
const homeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header>
    <nav><div class="container"><a class="logo" href="{{.BasePath}}index.html">{{.SiteName}}</a></div></nav>
  </header>
  <main class="container">
    <section class="search">
      <form id="search-form" action="{{.SearchAction}}" method="get"{{if .Static}} data-index="{{.BasePath}}search-index.json"{{end}}>
        <input type="text" id="search-input" name="q" value="{{.Query}}" placeholder="Search posts..." autocomplete="off">
        <button type="submit" id="search-button">Search</button>
      </form>
      <div id="search-results"{{if not .SearchShown}} style="display: none"{{end}}>
        <h2>Search Results</h2>
        <div id="search-results-container" class="posts-grid">{{.Search}}</div>
      </div>
    </section>
    <section>
      <h2>Latest Posts</h2>
      <div id="latest-posts-container" class="posts-grid">{{.Latest}}</div>
    </section>
    <section>
      <h2>Popular Posts</h2>
      <div id="popular-posts-container" class="posts-grid">{{.Popular}}</div>
    </section>
  </main>
  {{if .ShowConsent}}
  <div id="cookie-consent-banner" class="show" data-choice-key="{{.ChoiceKey}}" data-date-key="{{.DateKey}}">
    <div class="cookie-consent-text">We use cookies to improve your experience.</div>
    <div class="cookie-consent-buttons">
      <form method="post" action="{{.ConsentAction}}">
        <button type="submit" id="cookie-accept-all" name="choice" value="all">Accept All</button>
      </form>
      <form method="post" action="{{.ConsentAction}}">
        <button type="submit" id="cookie-accept-necessary" name="choice" value="necessary">Necessary Only</button>
      </form>
      <a id="cookie-settings" href="{{.BasePath}}cookie-policy.html" target="_blank">Cookie Policy</a>
    </div>
  </div>
  {{end}}
  {{if .Static}}<script src="{{.BasePath}}site.js" defer></script>{{end}}
</body>
</html>`

// postTemplate is a single post page.
const postTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header>
    <nav><div class="container"><a class="logo" href="{{.BasePath}}index.html">{{.SiteName}}</a></div></nav>
  </header>
  <main class="container">
    <article class="post">
      <div class="post-header">
        <h1>{{.Title}}</h1>
        <div class="post-meta">
          <span class="post-date">{{.Date}}</span>
          <span class="reading-time">{{.ReadingTime}}</span>
          <span class="view-count"><span id="views" data-views-key="{{.ViewsKey}}">{{.Views}}</span> views</span>
        </div>
      </div>
      {{if .Image}}<img class="post-image" src="{{.Image}}" alt="{{.Title}}">{{end}}
      <div class="post-body">{{if .Body}}{{.Body}}{{else}}<p>{{.Excerpt}}</p>{{end}}</div>
      <div class="social-share">
        {{range .Share}}<a class="{{.Platform}}" href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a>
        {{end}}
      </div>
    </article>
  </main>
  {{if .Static}}<script src="{{.BasePath}}site.js" defer></script>{{end}}
</body>
</html>`

// cssContent is the stylesheet written next to the built pages.
const cssContent = `:root {
  --bg: #ffffff;
  --text: #1f2933;
  --muted: #6b7280;
  --accent: #2f855a;
  --card-border: #e5e7eb;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--text); }
.container { max-width: 1100px; margin: 0 auto; padding: 0 1rem; }
header { border-bottom: 1px solid var(--card-border); padding: 1rem 0; }
.logo { font-weight: 700; color: var(--accent); text-decoration: none; }
.posts-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1.5rem; }
.post-card { border: 1px solid var(--card-border); border-radius: 8px; overflow: hidden; }
.post-card img { width: 100%; height: 180px; object-fit: cover; }
.post-content { padding: 1rem; }
.post-title a { color: inherit; text-decoration: none; }
.post-meta { display: flex; gap: 1rem; color: var(--muted); font-size: 0.9rem; }
.no-results { color: var(--muted); }
.social-share { display: flex; gap: 0.75rem; margin-top: 2rem; }
.cookie-consent-buttons { display: flex; gap: 0.5rem; align-items: center; }
.cookie-consent-buttons form { margin: 0; }
#cookie-consent-banner { position: fixed; bottom: 0; left: 0; right: 0; padding: 1rem; background: #111827; color: #f9fafb; display: flex; justify-content: space-between; gap: 1rem; }
`

// scriptContent runs the built site without a server: search over
// search-index.json, per-page view counts and the consent choice, all kept
// in localStorage.
const scriptContent = `(function () {
  'use strict';

  // Stored counts that are not plain digits start over.
  function storedCount(raw) {
    return /^\s*\d+\s*$/.test(raw || '') ? parseInt(raw, 10) : 0;
  }

  function recordPageView() {
    var el = document.getElementById('views');
    if (!el || !el.dataset.viewsKey) return;
    var count = storedCount(localStorage.getItem(el.dataset.viewsKey)) + 1;
    localStorage.setItem(el.dataset.viewsKey, String(count));
    el.textContent = String(count);
  }

  function setupConsent() {
    var banner = document.getElementById('cookie-consent-banner');
    if (!banner) return;
    var choiceKey = banner.dataset.choiceKey;
    var dateKey = banner.dataset.dateKey;
    if (localStorage.getItem(choiceKey)) {
      banner.style.display = 'none';
      return;
    }
    banner.querySelectorAll('form').forEach(function (form) {
      form.addEventListener('submit', function (e) {
        e.preventDefault();
        var button = e.submitter || form.querySelector('button');
        localStorage.setItem(choiceKey, button.value);
        localStorage.setItem(dateKey, new Date().toISOString());
        banner.style.display = 'none';
      });
    });
  }

  function el(tag, className, text) {
    var node = document.createElement(tag);
    if (className) node.className = className;
    if (text !== undefined) node.textContent = text;
    return node;
  }

  function card(entry) {
    var root = el('div', 'post-card');
    var thumb = el('a', 'post-thumbnail');
    thumb.href = entry.url;
    var img = el('img');
    img.src = entry.thumbnail;
    img.alt = entry.title;
    thumb.appendChild(img);
    root.appendChild(thumb);

    var content = el('div', 'post-content');
    var title = el('h3', 'post-title');
    var link = el('a', '', entry.title);
    link.href = entry.url;
    title.appendChild(link);
    content.appendChild(title);
    content.appendChild(el('p', 'post-excerpt', entry.excerpt));
    var meta = el('div', 'post-meta');
    meta.appendChild(el('span', 'post-date', entry.date));
    meta.appendChild(el('span', 'view-count', entry.views));
    content.appendChild(meta);
    root.appendChild(content);
    return root;
  }

  function setupSearch() {
    var form = document.getElementById('search-form');
    if (!form || !form.dataset.index) return;
    var input = document.getElementById('search-input');
    var section = document.getElementById('search-results');
    var container = document.getElementById('search-results-container');
    var index = null;

    function run(raw) {
      var q = raw.trim().toLowerCase();
      if (!q) return;
      if (!index) {
        index = fetch(form.dataset.index).then(function (res) { return res.json(); });
      }
      index.then(function (entries) {
        var hits = entries.filter(function (e) {
          return e.title.toLowerCase().indexOf(q) !== -1 ||
            e.excerpt.toLowerCase().indexOf(q) !== -1;
        });
        container.replaceChildren();
        if (hits.length === 0) {
          container.appendChild(el('p', 'no-results', 'No results found. Try a different search term.'));
        } else {
          hits.forEach(function (e) { container.appendChild(card(e)); });
        }
        section.style.display = '';
      });
    }

    form.addEventListener('submit', function (e) {
      e.preventDefault();
      run(input.value);
    });
    var initial = new URLSearchParams(window.location.search).get('q');
    if (initial) {
      input.value = initial;
      run(initial);
    }
  }

  document.addEventListener('DOMContentLoaded', function () {
    recordPageView();
    setupConsent();
    setupSearch();
  });
})();
`
