package audiotag

// Copy transfers the field categories selected by fields from src to
// dst. A field that is absent on src (empty string, zero number, nil
// slice) never overwrites a value already present on dst. Both tags may
// be of different concrete formats; only fields the destination format
// can represent take effect.
func Copy(dst, src Metadata, fields FieldTypes) {
	if fields&FieldBasic != 0 {
		copyString(src.Title(), dst.SetTitle)
		copyStrings(src.Artists(), dst.SetArtists)
		copyString(src.Album(), dst.SetAlbum)
		copyStrings(src.Genres(), dst.SetGenres)
		copyInt(src.Year(), dst.SetYear)
		copyString(src.Comment(), dst.SetComment)
		copyPosition(src.Track, dst.SetTrack)
		copyPosition(src.Disc, dst.SetDisc)
	}

	if fields&FieldExtended != 0 {
		copyString(src.AlbumArtist(), dst.SetAlbumArtist)
		copyStrings(src.Composers(), dst.SetComposers)
		copyString(src.Lyrics(), dst.SetLyrics)
		copyInt(src.BPM(), dst.SetBPM)
		copyString(src.ISRC(), dst.SetISRC)
		copyString(src.Copyright(), dst.SetCopyright)
	}

	if fields&FieldSortOrder != 0 {
		copyString(src.TitleSort(), dst.SetTitleSort)
		copyString(src.ArtistSort(), dst.SetArtistSort)
		copyString(src.AlbumSort(), dst.SetAlbumSort)
		copyString(src.AlbumArtistSort(), dst.SetAlbumArtistSort)
		copyString(src.ComposerSort(), dst.SetComposerSort)
	}

	if fields&FieldMusicBrainz != 0 {
		copyString(src.MusicBrainzTrackID(), dst.SetMusicBrainzTrackID)
		copyString(src.MusicBrainzArtistID(), dst.SetMusicBrainzArtistID)
		copyString(src.MusicBrainzAlbumID(), dst.SetMusicBrainzAlbumID)
		copyString(src.MusicBrainzReleaseGroupID(), dst.SetMusicBrainzReleaseGroupID)
	}

	if fields&FieldReplayGain != 0 {
		copyString(src.ReplayGainTrackGain(), dst.SetReplayGainTrackGain)
		copyString(src.ReplayGainTrackPeak(), dst.SetReplayGainTrackPeak)
		copyString(src.ReplayGainAlbumGain(), dst.SetReplayGainAlbumGain)
		copyString(src.ReplayGainAlbumPeak(), dst.SetReplayGainAlbumPeak)
	}

	if fields&FieldPictures != 0 {
		if pics := src.Pictures(); len(pics) > 0 {
			dst.SetPictures(pics)
		}
	}
}

func copyString(v string, set func(string)) {
	if v != "" {
		set(v)
	}
}

func copyStrings(v []string, set func([]string)) {
	if len(v) > 0 {
		set(v)
	}
}

func copyInt(v int, set func(int)) {
	if v != 0 {
		set(v)
	}
}

func copyPosition(get func() (int, int), set func(int, int)) {
	if n, total := get(); n != 0 || total != 0 {
		set(n, total)
	}
}
