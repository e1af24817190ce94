// Package seed holds the built-in book import data for cmd/import_books.
package seed

import "fritzoria/internal/model"

// Books returns the starter catalog as create drafts, ready to feed through
// the regular create path so validation and defaults apply.
func Books() []model.BookDraft {
	return []model.BookDraft{
		{
			Title:        str("Laskar Pelangi"),
			Author:       str("Andrea Hirata"),
			Publisher:    str("Bentang Pustaka"),
			PublishYear:  num(2005),
			Price:        price(89000),
			Rating:       rating(4.8),
			ReviewCount:  num(1250),
			Stock:        num(42),
			IsBestseller: yes(),
			Language:     str("Indonesia"),
			PageCount:    num(529),
			ISBN:         str("9789793062792"),
			Synopsis:     str("Kisah sepuluh anak Belitung yang memperjuangkan pendidikan."),
			Categories:   cats("fiction", "education"),
		},
		{
			Title:         str("Bumi Manusia"),
			Author:        str("Pramoedya Ananta Toer"),
			Publisher:     str("Lentera Dipantara"),
			PublishYear:   num(1980),
			Price:         price(115000),
			OriginalPrice: price(135000),
			Rating:        rating(4.9),
			ReviewCount:   num(2100),
			Stock:         num(18),
			IsBestseller:  yes(),
			Language:      str("Indonesia"),
			PageCount:     num(535),
			ISBN:          str("9789799731234"),
			Synopsis:      str("Roman pertama dari Tetralogi Buru."),
			Categories:    cats("fiction"),
		},
		{
			Title:       str("Filosofi Teras"),
			Author:      str("Henry Manampiring"),
			Publisher:   str("Kompas"),
			PublishYear: num(2018),
			Price:       price(98000),
			Rating:      rating(4.7),
			ReviewCount: num(890),
			Stock:       num(65),
			IsNew:       yes(),
			Language:    str("Indonesia"),
			PageCount:   num(320),
			ISBN:        str("9786024125189"),
			Synopsis:    str("Filsafat Stoa untuk hidup yang lebih tenang."),
			Categories:  cats("self-help", "non-fiction"),
		},
		{
			Title:         str("Atomic Habits"),
			Author:        str("James Clear"),
			Publisher:     str("Gramedia Pustaka Utama"),
			PublishYear:   num(2019),
			Price:         price(108000),
			OriginalPrice: price(128000),
			Rating:        rating(4.8),
			ReviewCount:   num(3400),
			Stock:         num(120),
			IsBestseller:  yes(),
			Language:      str("Indonesia"),
			PageCount:     num(340),
			ISBN:          str("9786020633176"),
			Synopsis:      str("Perubahan kecil yang memberikan hasil luar biasa."),
			Categories:    cats("self-help", "international"),
		},
		{
			Title:       str("Pulang"),
			Author:      str("Tere Liye"),
			Publisher:   str("Republika"),
			PublishYear: num(2015),
			Price:       price(75000),
			Rating:      rating(4.6),
			ReviewCount: num(1560),
			Stock:       num(34),
			Language:    str("Indonesia"),
			PageCount:   num(400),
			ISBN:        str("9786020822129"),
			Synopsis:    str("Perjalanan seorang anak menemukan arti pulang."),
			Categories:  cats("fiction"),
		},
		{
			Title:       str("Dilan: Dia adalah Dilanku Tahun 1990"),
			Author:      str("Pidi Baiq"),
			Publisher:   str("Pastel Books"),
			PublishYear: num(2014),
			Price:       price(69000),
			Rating:      rating(4.5),
			ReviewCount: num(2780),
			Stock:       num(50),
			Language:    str("Indonesia"),
			PageCount:   num(332),
			ISBN:        str("9786027870413"),
			Synopsis:    str("Kisah cinta remaja Bandung tahun 1990."),
			Categories:  cats("romance", "fiction"),
		},
		{
			Title:       str("Koki Cilik: Resep Masakan Nusantara"),
			Author:      str("Sisca Soewitomo"),
			Publisher:   str("Gramedia Pustaka Utama"),
			PublishYear: num(2020),
			Price:       price(55000),
			Rating:      rating(4.3),
			ReviewCount: num(210),
			Stock:       num(27),
			IsNew:       yes(),
			Language:    str("Indonesia"),
			PageCount:   num(180),
			ISBN:        str("9786020645118"),
			Synopsis:    str("Resep masakan tradisional yang mudah diikuti anak."),
			Categories:  cats("cooking", "children"),
		},
		{
			Title:         str("Sapiens: Riwayat Singkat Umat Manusia"),
			Author:        str("Yuval Noah Harari"),
			Publisher:     str("Kepustakaan Populer Gramedia"),
			PublishYear:   num(2017),
			Price:         price(135000),
			OriginalPrice: price(155000),
			Rating:        rating(4.7),
			ReviewCount:   num(1980),
			Stock:         num(40),
			Language:      str("Indonesia"),
			PageCount:     num(526),
			ISBN:          str("9786024240769"),
			Synopsis:      str("Sejarah besar umat manusia dari zaman batu hingga era digital."),
			Categories:    cats("non-fiction", "international", "education"),
		},
	}
}

func str(v string) *string { return &v }

func num(v int) *int { return &v }

func price(v float64) *float64 { return &v }

func rating(v float64) *float64 { return &v }

func yes() *bool { v := true; return &v }

func cats(ids ...string) *[]string { return &ids }
