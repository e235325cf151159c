package api

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/pokecatalog/internal/catalog"
	imagepkg "github.com/youruser/pokecatalog/internal/image"
	"github.com/youruser/pokecatalog/internal/store"
)

// Config carries the presentation-side settings the handlers need beyond
// the store itself.
type Config struct {
	ImageDir      string // root of local card artwork
	ImageLocale   string // preferred locale key into a card's img map
	PublicBaseURL string // base for QR share links
}

type Handlers struct {
	store *store.Store
	log   *zap.Logger
	cfg   Config
}

func New(st *store.Store, log *zap.Logger, cfg Config) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{store: st, log: log, cfg: cfg}
}

// health
func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getSet returns the assembled (reference-resolved, sorted) set.
func (h *Handlers) getSet(c *gin.Context) {
	set, err := h.store.BuildSet(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// getCard returns a single assembled card by printed number.
func (h *Handlers) getCard(c *gin.Context) {
	code, num := c.Param("code"), c.Param("num")
	set, err := h.store.BuildSet(c.Request.Context(), code)
	if err != nil {
		h.fail(c, err)
		return
	}
	want := catalog.NumValue(num)
	for _, card := range set.Cards {
		if catalog.NumValue(card.Num) == want {
			c.JSON(http.StatusOK, card)
			return
		}
	}
	h.fail(c, catalog.NewCardNotFound(code, num))
}

// setSheet renders a PNG contact sheet of the set's card artwork. Cards
// whose image file is missing are skipped (best-effort), the sheet itself
// is not.
func (h *Handlers) setSheet(c *gin.Context) {
	code := c.Param("code")
	set, err := h.store.BuildSet(c.Request.Context(), code)
	if err != nil {
		h.fail(c, err)
		return
	}

	cols := 10
	if v, err := strconv.Atoi(c.Query("cols")); err == nil && v > 0 {
		cols = v
	}

	var imgs []image.Image
	for _, card := range set.Cards {
		rel := h.imagePath(card)
		if rel == "" {
			continue
		}
		img, err := imagepkg.LoadCardImage(filepath.Join(h.cfg.ImageDir, rel))
		if err != nil {
			h.log.Warn("skipping card image",
				zap.String("card", code+":"+card.Num),
				zap.Error(err))
			continue
		}
		imgs = append(imgs, img)
	}

	sheet := imagepkg.ComposeSheet(imgs, cols)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, sheet); err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// cardQR returns a QR PNG linking to the card's public page.
func (h *Handlers) cardQR(c *gin.Context) {
	code, num := c.Param("code"), c.Param("num")
	if _, err := h.store.FindCard(c.Request.Context(), code, num); err != nil {
		h.fail(c, err)
		return
	}

	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}

	text := fmt.Sprintf("%s/sets/%s/%s", strings.TrimRight(h.cfg.PublicBaseURL, "/"), code, num)
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// imagePath picks the card's artwork path for the configured locale,
// falling back to the first locale by key order.
func (h *Handlers) imagePath(card catalog.Card) string {
	if len(card.Img) == 0 {
		return ""
	}
	if p, ok := card.Img[h.cfg.ImageLocale]; ok {
		return p
	}
	locales := make([]string, 0, len(card.Img))
	for l := range card.Img {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return card.Img[locales[0]]
}

func (h *Handlers) fail(c *gin.Context, err error) {
	status := catalog.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
