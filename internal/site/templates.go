package site

// pageTemplate renders a single catalog page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}css/style.css">
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
    <nav class="main-nav">
      <ul>
      {{- range .Pages}}
        <li><a href="{{$.BasePath}}{{.Locator}}">{{.Title}}</a></li>
      {{- end}}
      </ul>
    </nav>
  </header>
  <main class="page-content">
    {{.Content}}
  </main>
  <footer class="site-footer">
    <p>September 1, 1939 - September 2, 1945</p>
  </footer>
</body>
</html>
`

// indexTemplate renders the landing page listing every catalog page.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteTitle}}</title>
  <link rel="stylesheet" href="css/style.css">
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="index.html">{{.SiteTitle}}</a>
  </header>
  <main class="page-content">
    {{.Content}}
    <section class="page-list">
      {{- range .Pages}}
      <article class="year-card">
        <h2><a href="{{.Locator}}">{{.Title}}</a></h2>
        {{- if .Keywords}}
        <p class="keywords">{{join .Keywords ", "}}</p>
        {{- end}}
      </article>
      {{- end}}
    </section>
  </main>
  <footer class="site-footer">
    <p>September 1, 1939 - September 2, 1945</p>
  </footer>
</body>
</html>
`
