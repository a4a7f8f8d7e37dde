package audiotag

// FieldTypes is a bitmask selecting groups of semantic fields for Copy.
type FieldTypes uint32

const (
	// FieldBasic covers title, artists, album, genres, year, comment
	// and track/disc positions.
	FieldBasic FieldTypes = 1 << iota
	// FieldExtended covers album artist, composers, lyrics, BPM, ISRC
	// and copyright.
	FieldExtended
	// FieldSortOrder covers the sort-name variants of title, artist,
	// album, album artist and composer.
	FieldSortOrder
	// FieldMusicBrainz covers the MusicBrainz database identifiers.
	FieldMusicBrainz
	// FieldReplayGain covers the replay-gain gain and peak values.
	FieldReplayGain
	// FieldPictures covers embedded pictures.
	FieldPictures

	// FieldNone selects no fields at all.
	FieldNone FieldTypes = 0
	// FieldAll selects every field category.
	FieldAll FieldTypes = ^FieldTypes(0)
)

// Picture is an embedded image carried by a tag.
type Picture struct {
	MIMEType    string
	Type        byte
	Description string
	Data        []byte
}

// Metadata is the field contract every concrete tag format implements.
//
// Getters return the zero value when the underlying tag cannot
// represent or does not contain a field. Setters on formats that cannot
// represent a field are explicit no-ops rather than errors, so callers
// can write format-agnostic code.
type Metadata interface {
	Title() string
	SetTitle(string)
	Artists() []string
	SetArtists([]string)
	Album() string
	SetAlbum(string)
	Genres() []string
	SetGenres([]string)
	Year() int
	SetYear(int)
	Comment() string
	SetComment(string)
	Track() (number, total int)
	SetTrack(number, total int)
	Disc() (number, total int)
	SetDisc(number, total int)

	AlbumArtist() string
	SetAlbumArtist(string)
	Composers() []string
	SetComposers([]string)
	Lyrics() string
	SetLyrics(string)
	BPM() int
	SetBPM(int)
	ISRC() string
	SetISRC(string)
	Copyright() string
	SetCopyright(string)

	TitleSort() string
	SetTitleSort(string)
	ArtistSort() string
	SetArtistSort(string)
	AlbumSort() string
	SetAlbumSort(string)
	AlbumArtistSort() string
	SetAlbumArtistSort(string)
	ComposerSort() string
	SetComposerSort(string)

	MusicBrainzTrackID() string
	SetMusicBrainzTrackID(string)
	MusicBrainzArtistID() string
	SetMusicBrainzArtistID(string)
	MusicBrainzAlbumID() string
	SetMusicBrainzAlbumID(string)
	MusicBrainzReleaseGroupID() string
	SetMusicBrainzReleaseGroupID(string)

	ReplayGainTrackGain() string
	SetReplayGainTrackGain(string)
	ReplayGainTrackPeak() string
	SetReplayGainTrackPeak(string)
	ReplayGainAlbumGain() string
	SetReplayGainAlbumGain(string)
	ReplayGainAlbumPeak() string
	SetReplayGainAlbumPeak(string)

	Pictures() []Picture
	SetPictures([]Picture)
}
