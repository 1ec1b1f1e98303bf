package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"image/color"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frizinak/gohan/common"
	"github.com/frizinak/gohan/dict"
	"github.com/frizinak/gohan/hsk"
	"github.com/frizinak/gohan/image"
	"github.com/frizinak/gohan/note"
	"github.com/frizinak/gotls/simplehttp"
	"github.com/frizinak/gotls/tls"
)

var (
	imgFG = color.NRGBA{255, 255, 255, 255}
	imgBG = color.NRGBA{0, 0, 0, 0}
)

type Config struct {
	GOBPath     string
	Mode        hsk.FormMode
	ImgCacheDir string
	Font        []byte
}

type App struct {
	conf       Config
	appJS      string
	homeTpl    *template.Template
	wordsTpl   *template.Template
	resultsTpl *template.Template
	errTpl     *template.Template
}

func (app *App) dict() (*dict.Dict, error) {
	return common.GetDict(app.conf.GOBPath, app.conf.Mode)
}

func (app *App) route(r *http.Request, l *log.Logger) (simplehttp.HandleFunc, int) {
	p := strings.Trim(r.URL.Path, "/")
	r.URL.Path = p

	switch p {
	case "":
		return app.handleHome, 0
	case "asset/app.js":
		return app.handleAppJS, 0
	}

	switch {
	case strings.HasPrefix(p, "w/") && strings.Count(p, "/") == 1:
		return app.handleSearch, 0
	case strings.HasPrefix(p, "n/") && strings.Count(p, "/") == 1:
		return app.handleNote, 0
	case strings.HasPrefix(p, "i/") && strings.Count(p, "/") == 1:
		return app.handleImg, 0
	}

	return nil, 0
}

func absWord(w *hsk.Word) string { return fmt.Sprintf("/w/%s", url.PathEscape(w.Form)) }
func absNote(w *hsk.Word) string { return fmt.Sprintf("/n/%s", url.PathEscape(w.Form)) }
func absImg(w *hsk.Word) string  { return fmt.Sprintf("/i/%s.png", url.PathEscape(w.Form)) }

func (app *App) cache(path string, w io.Writer, generate func(w io.Writer) (int64, error)) (int64, error) {
	f, err := os.Open(path)
	if err == nil {
		n, err := io.Copy(w, f)
		f.Close()
		return n, err
	}

	if os.IsNotExist(err) {
		tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())
		f, err := os.Create(tmp)
		if err != nil {
			return 0, err
		}
		rw := io.MultiWriter(f, w)
		n, err := generate(rw)
		f.Close()
		if err != nil {
			os.Remove(tmp)
			return n, err
		}
		os.Rename(tmp, path)
		return n, nil
	}

	return 0, err
}

func (app *App) img(word *hsk.Word, w io.Writer) (int64, error) {
	if word == nil {
		return 0, errors.New("nil word")
	}

	fp := filepath.Join(app.conf.ImgCacheDir, word.Key+"-"+word.Form)
	return app.cache(fp, w, func(w io.Writer) (int64, error) {
		img, err := image.Image(300, word.Form, word.Pinyin, app.conf.Font, imgFG, imgBG)
		if err != nil {
			return 0, err
		}

		return -1, png.Encode(w, img)
	})
}

func (app *App) handleAppJS(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	h := w.Header()
	h.Set("content-type", "application/javascript")
	h.Set("cache-control", "max-age=86400")
	_, err := io.WriteString(w, app.appJS)
	return 0, err
}

func (app *App) handleHome(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	w.Header().Set("content-type", "text/html")
	return 0, app.homeTpl.Execute(w, "gohan")
}

func (app *App) handleImg(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	if len(app.conf.Font) == 0 {
		return http.StatusNotFound, nil
	}

	p := strings.SplitN(r.URL.Path, "/", 2)
	if !strings.HasSuffix(p[1], ".png") {
		return http.StatusNotFound, nil
	}
	form, err := url.PathUnescape(p[1][:len(p[1])-4])
	if err != nil {
		return http.StatusNotFound, nil
	}

	d, err := app.dict()
	if err != nil {
		return 0, err
	}
	word, ok := d.WordByForm(form)
	if !ok {
		return http.StatusNotFound, nil
	}

	h := w.Header()
	h.Set("content-type", "image/png")
	h.Set("cache-control", "max-age=86400")
	_, err = app.img(word, w)

	return 0, err
}

func (app *App) handleNote(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	p := strings.SplitN(r.URL.Path, "/", 2)
	name, err := url.PathUnescape(p[1])
	if err != nil {
		return http.StatusNotFound, nil
	}

	d, err := app.dict()
	if err != nil {
		return 0, err
	}

	rend := note.New(d)
	var body string
	if word, ok := d.WordByForm(name); ok {
		body = rend.Word(word)
	} else if si, ok := d.Symbol(name); ok && !si.Standalone {
		body = rend.Symbol(si)
	} else {
		return http.StatusNotFound, nil
	}

	w.Header().Set("content-type", "text/plain; charset=utf-8")
	_, err = io.WriteString(w, body)
	return 0, err
}

func (app *App) handleSearch(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	p := strings.SplitN(r.URL.Path, "/", 2)
	qry, err := url.PathUnescape(p[1])
	if err != nil {
		return http.StatusNotFound, nil
	}

	d, err := app.dict()
	if err != nil {
		return 0, err
	}

	res, hanzi := d.Search(qry, 30)
	if len(res) == 0 && !hanzi {
		res = d.SearchPinyinFuzzy(qry, 30)
	}
	if len(res) == 0 {
		res = d.SearchGlossFuzzy(qry, 30)
	}

	reqw := strings.ToLower(r.Header.Get("X-Requested-With"))
	xhr := reqw == "fetch" || reqw == "xmlhttprequest"

	data := WordPage{Query: qry, Words: res}

	w.Header().Set("content-type", "text/html")
	if xhr {
		return 0, app.resultsTpl.Execute(w, data)
	}

	return 0, app.wordsTpl.Execute(w, data)
}

type WordPage struct {
	Query string
	Words []*hsk.Word
}

func main() {
	var confPath string
	var addr string
	flag.StringVar(&confPath, "c", "", "config file")
	flag.StringVar(&addr, "l", "", "address to bind to")
	flag.Parse()

	cfg, err := common.LoadConfig(confPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if addr == "" {
		addr = cfg.Addr
	}

	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		_cacheDir, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "please specify a cache dir as we could not find a default directory: %s\n", err)
			os.Exit(1)
		}
		cacheDir = filepath.Join(_cacheDir, "gohan")
	}

	mode, err := hsk.ParseForm(cfg.Form)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var font []byte
	if cfg.FontPath != "" {
		font, err = os.ReadFile(cfg.FontPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	imgCacheDir := filepath.Join(cacheDir, "img")
	os.MkdirAll(imgCacheDir, 0700)

	l := log.New(os.Stderr, "", log.Ldate|log.Ltime)
	app := &App{
		conf: Config{
			GOBPath:     cfg.GOBPath,
			Mode:        mode,
			ImgCacheDir: imgCacheDir,
			Font:        font,
		},
		appJS: appJS(),
	}
	app.templates()

	s := tls.New(app.route, l)

	buf := bytes.NewBuffer(nil)
	for i := 300; i <= 500; i++ {
		buf.Reset()
		errstr := http.StatusText(i)
		if errstr == "" {
			errstr = "Something went wrong"
		}
		if err := app.errTpl.Execute(buf, fmt.Sprintf("%d - %s", i, errstr)); err != nil {
			panic(err)
		}
		b := make([]byte, buf.Len())
		copy(b, buf.Bytes())
		s.SetHTTPErrorHandler(i, simplehttp.NewHTTPError("text/html", b))
	}

	l.Fatal(s.Start(addr, false))
}
