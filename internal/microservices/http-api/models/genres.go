package models

// Genre is the fixed set of content genres.
type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDrama       Genre = "Drama"
	GenreHorror      Genre = "Horror"
	GenreSciFi       Genre = "Sci-Fi"
	GenreRomance     Genre = "Romance"
	GenreThriller    Genre = "Thriller"
	GenreAnimation   Genre = "Animation"
	GenreDocumentary Genre = "Documentary"
	GenreFantasy     Genre = "Fantasy"
)

var AllGenres = []Genre{
	GenreAction, GenreComedy, GenreDrama, GenreHorror, GenreSciFi,
	GenreRomance, GenreThriller, GenreAnimation, GenreDocumentary, GenreFantasy,
}

func (g Genre) Valid() bool {
	for _, v := range AllGenres {
		if v == g {
			return true
		}
	}
	return false
}

type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageSpanish  Language = "Spanish"
	LanguageFrench   Language = "French"
	LanguageJapanese Language = "Japanese"
	LanguageKorean   Language = "Korean"
	LanguageOther    Language = "Other"
)

var AllLanguages = []Language{
	LanguageEnglish, LanguageHindi, LanguageSpanish, LanguageFrench,
	LanguageJapanese, LanguageKorean, LanguageOther,
}

func (l Language) Valid() bool {
	for _, v := range AllLanguages {
		if v == l {
			return true
		}
	}
	return false
}

type ContentType string

const (
	ContentTypeMovie       ContentType = "Movie"
	ContentTypeWebSeries   ContentType = "Web Series"
	ContentTypeTVShow      ContentType = "TV Show"
	ContentTypeDocumentary ContentType = "Documentary"
)

var AllContentTypes = []ContentType{
	ContentTypeMovie, ContentTypeWebSeries, ContentTypeTVShow, ContentTypeDocumentary,
}

func (t ContentType) Valid() bool {
	for _, v := range AllContentTypes {
		if v == t {
			return true
		}
	}
	return false
}
