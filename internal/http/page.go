package http

// playerTpl is the whole player UI: course data and watched state are
// embedded as JSON and the page runs standalone from there, only calling
// back into /api/* for progress changes.
const playerTpl = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.CourseName}} - Course Player</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;background:#1e1e1e;color:#e0e0e0;overflow:hidden}
.container{display:flex;height:100vh}
.sidebar{width:300px;min-width:220px;background:#252526;overflow-y:auto;flex-shrink:0;border-right:1px solid #3c3c3c}
.sidebar-header{padding:16px;background:#2d2d30;border-bottom:1px solid #3c3c3c;position:sticky;top:0;z-index:1}
.sidebar-header h1{font-size:1rem;word-break:break-word}
.sidebar-header .progress-line{color:#9d9d9d;font-size:.8rem;margin-top:6px}
.sidebar-header button{margin-top:8px;background:#3c3c3c;color:#e0e0e0;border:0;border-radius:4px;padding:4px 10px;cursor:pointer;font-size:.75rem}
.sidebar-header button:hover{background:#4a4a4d}
.section h2{font-size:.85rem;padding:10px 16px 4px;color:#c586c0;word-break:break-word}
.video-item{display:flex;gap:8px;align-items:baseline;padding:6px 16px;cursor:pointer;font-size:.85rem;word-break:break-word}
.video-item:hover{background:#2a2d2e}
.video-item.active{background:#094771}
.video-item.watched .title{color:#6a9955}
.video-item .mark{flex:0 0 auto;width:1em}
.main{flex:1;display:flex;flex-direction:column;overflow-y:auto}
.player{background:#000}
.player video{width:100%;max-height:70vh;display:block}
.below{padding:16px}
.below h2{font-size:1.05rem;margin-bottom:8px;word-break:break-word}
.resources h3{font-size:.9rem;margin:12px 0 6px;color:#9d9d9d}
.resources a{color:#569cd6;text-decoration:none;font-size:.85rem}
.resources a:hover{text-decoration:underline}
.resources .size{color:#6b6b6b;font-size:.75rem;margin-left:6px}
.resources li{list-style:none;padding:2px 0}
.placeholder{padding:32px;color:#9d9d9d}
</style>
</head>
<body>
<div class="container">
  <nav class="sidebar">
    <div class="sidebar-header">
      <h1>{{.CourseName}}</h1>
      <div class="progress-line" id="progressLine"></div>
      <button id="resetBtn" type="button">Reset progress</button>
    </div>
    <div id="sections"></div>
  </nav>
  <main class="main">
    <div class="player"><video id="video" controls preload="metadata"></video></div>
    <div class="below">
      <h2 id="nowPlaying">Select a video</h2>
      <div class="resources" id="resources"></div>
    </div>
  </main>
</div>
<script>
(function(){
  var courseData = {{.CourseJSON}};
  var watched = new Set({{.WatchedJSON}});
  var video = document.getElementById('video');
  var sectionsEl = document.getElementById('sections');
  var nowPlaying = document.getElementById('nowPlaying');
  var resourcesEl = document.getElementById('resources');
  var progressLine = document.getElementById('progressLine');
  var current = null;

  function encodePath(p){
    return '/' + p.split('/').map(encodeURIComponent).join('/');
  }
  function totalVideos(){
    var n = 0;
    Object.keys(courseData).forEach(function(k){ n += courseData[k].videos.length; });
    return n;
  }
  function updateProgressLine(){
    progressLine.textContent = watched.size + ' / ' + totalVideos() + ' watched';
  }
  function post(url, body){
    return fetch(url, {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body || {})
    }).then(function(res){
      if (!res.ok) throw new Error('request failed: ' + res.status);
      return res.json();
    });
  }
  function markRow(item, on){
    item.classList.toggle('watched', on);
    item.querySelector('.mark').textContent = on ? '✓' : '';
  }
  function render(){
    sectionsEl.innerHTML = '';
    Object.keys(courseData).forEach(function(id){
      var section = courseData[id];
      var div = document.createElement('div');
      div.className = 'section';
      var h = document.createElement('h2');
      h.textContent = id.replace(/^00-/, '');
      div.appendChild(h);
      section.videos.forEach(function(v){
        var item = document.createElement('div');
        item.className = 'video-item';
        item.dataset.path = v.path;
        var mark = document.createElement('span');
        mark.className = 'mark';
        var title = document.createElement('span');
        title.className = 'title';
        title.textContent = v.name;
        item.appendChild(mark);
        item.appendChild(title);
        markRow(item, watched.has(v.path));
        item.addEventListener('click', function(){ play(v, item); });
        mark.addEventListener('click', function(e){
          e.stopPropagation();
          toggleWatched(v.path, item);
        });
        div.appendChild(item);
      });
      sectionsEl.appendChild(div);
    });
    updateProgressLine();
  }
  function play(v, item){
    if (current) current.classList.remove('active');
    current = item;
    item.classList.add('active');
    video.src = encodePath(v.path);
    while (video.firstChild) video.removeChild(video.firstChild);
    if (v.subtitle) {
      var track = document.createElement('track');
      track.kind = 'subtitles';
      track.label = 'Subtitles';
      track.srclang = 'en';
      track.src = encodePath(v.subtitle);
      track.default = true;
      video.appendChild(track);
    }
    video.play();
    nowPlaying.textContent = v.name;
    renderResources(v);
  }
  function renderResources(v){
    resourcesEl.innerHTML = '';
    if (!v.resources || !v.resources.length) return;
    var h = document.createElement('h3');
    h.textContent = 'Resources';
    resourcesEl.appendChild(h);
    var ul = document.createElement('ul');
    v.resources.forEach(function(r){
      var li = document.createElement('li');
      var a = document.createElement('a');
      a.href = encodePath(r.path);
      a.textContent = r.name;
      a.target = '_blank';
      li.appendChild(a);
      if (r.size) {
        var sz = document.createElement('span');
        sz.className = 'size';
        sz.textContent = r.size;
        li.appendChild(sz);
      }
      ul.appendChild(li);
    });
    resourcesEl.appendChild(ul);
  }
  function toggleWatched(path, item){
    post('/api/toggle_watched', {path: path}).then(function(data){
      if (data.watched) watched.add(path); else watched.delete(path);
      markRow(item, data.watched);
      updateProgressLine();
    }).catch(function(){});
  }
  video.addEventListener('ended', function(){
    if (!current) return;
    var path = current.dataset.path;
    if (watched.has(path)) return;
    post('/api/mark_watched', {path: path}).then(function(){
      watched.add(path);
      markRow(current, true);
      updateProgressLine();
    }).catch(function(){});
  });
  document.getElementById('resetBtn').addEventListener('click', function(){
    if (!window.confirm('Reset all progress?')) return;
    post('/api/reset_progress').then(function(){
      watched.clear();
      Array.prototype.forEach.call(document.querySelectorAll('.video-item'), function(n){
        markRow(n, false);
      });
      updateProgressLine();
    }).catch(function(){});
  });
  render();
})();
</script>
</body>
</html>
`
