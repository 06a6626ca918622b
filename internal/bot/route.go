package bot

import (
	"fmt"
	"strconv"
	"strings"

	"moviebot/internal/models"
)

// Callback data tags form a stable external contract with buttons already in
// users' chats; never rename them.
const (
	dataRootMenu     = "start_menu"
	dataGenreMenu    = "show_genres"
	dataCompanyMenu  = "show_companies"
	dataSportsMenu   = "show_sports"
	dataSearchPrompt = "search_movie"

	selectPrefix = "select_movie_"
)

type actionKind int

const (
	actionUnknown actionKind = iota
	actionRootMenu
	actionGenreMenu
	actionCompanyMenu
	actionSportsMenu
	actionSearchPrompt
	actionBrowse
	actionSelect
)

// action is the routed form of a callback, parsed once at the transport
// boundary so handlers never touch raw data strings
type action struct {
	kind     actionKind
	category models.Category
	key      string
	page     int
	index    int
}

// parseAction maps callback data to an action. Anything that doesn't match a
// known tag routes to actionUnknown.
func parseAction(data string) action {
	switch data {
	case dataRootMenu:
		return action{kind: actionRootMenu}
	case dataGenreMenu:
		return action{kind: actionGenreMenu}
	case dataCompanyMenu:
		return action{kind: actionCompanyMenu}
	case dataSportsMenu:
		return action{kind: actionSportsMenu}
	case dataSearchPrompt:
		return action{kind: actionSearchPrompt}
	}

	if idx, ok := strings.CutPrefix(data, selectPrefix); ok {
		i, err := strconv.Atoi(idx)
		if err != nil {
			return action{kind: actionUnknown}
		}
		return action{kind: actionSelect, index: i}
	}

	for _, cat := range []models.Category{models.CategoryGenre, models.CategoryCompany, models.CategoryRating} {
		rest, ok := strings.CutPrefix(data, string(cat)+"_")
		if !ok {
			continue
		}
		key, pageStr, ok := strings.Cut(rest, "_")
		if !ok {
			return action{kind: actionUnknown}
		}
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return action{kind: actionUnknown}
		}
		if !validKey(cat, key) {
			return action{kind: actionUnknown}
		}
		return action{kind: actionBrowse, category: cat, key: key, page: page}
	}

	return action{kind: actionUnknown}
}

func validKey(cat models.Category, key string) bool {
	if cat == models.CategoryRating {
		return key == "high" || key == "low"
	}
	_, err := strconv.Atoi(key)
	return err == nil
}

// browseData encodes a category page reference back into callback data
func browseData(cat models.Category, key string, page int) string {
	return fmt.Sprintf("%s_%s_%d", cat, key, page)
}

// selectData encodes a result-index selection into callback data
func selectData(index int) string {
	return selectPrefix + strconv.Itoa(index)
}
