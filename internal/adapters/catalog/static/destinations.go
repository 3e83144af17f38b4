// Package static serves the built-in list of gamelan destinations around the
// Keraton Yogyakarta.
package static

import (
	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/ports"
)

type Catalog struct {
	destinations []domain.Destination
}

var _ ports.DestinationCatalog = (*Catalog)(nil)

func NewCatalog() *Catalog {
	return &Catalog{destinations: keratonDestinations()}
}

// List returns a copy so callers cannot reorder the catalog.
func (c *Catalog) List() []domain.Destination {
	out := make([]domain.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

func price(rupiah int64) *int64 {
	return &rupiah
}

func keratonDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID:              "KRT-01",
			Name:            "Bangsal Sri Manganti",
			Description:     "Bangsal tempat pertunjukan gamelan dan tari klasik untuk menyambut tamu keraton setiap pagi.",
			Image:           "/images/sri-manganti.jpg",
			Location:        "Kompleks Keraton Yogyakarta, Kraton, Yogyakarta",
			Hours:           "08:30 - 14:00",
			HistoricalValue: "Dibangun pada masa Sultan Hamengku Buwono I sebagai ruang penerimaan tamu kerajaan.",
			Price:           price(15000),
		},
		{
			ID:              "KRT-02",
			Name:            "Museum Gamelan Keraton",
			Description:     "Koleksi perangkat gamelan pusaka keraton, termasuk Kyai Guntur Madu dan Kyai Naga Wilaga.",
			Image:           "/images/museum-gamelan.jpg",
			Location:        "Kompleks Keraton Yogyakarta, Kraton, Yogyakarta",
			Hours:           "08:00 - 14:00",
			HistoricalValue: "Menyimpan gamelan sekaten yang hanya dimainkan saat perayaan Maulid Nabi.",
			Price:           price(15000),
		},
		{
			ID:              "KRT-03",
			Name:            "Bangsal Pagelaran",
			Description:     "Pendopo besar di sisi utara keraton. Di Pagelaran digelar latihan karawitan terbuka untuk umum.",
			Image:           "/images/bangsal-pagelaran.jpg",
			Location:        "Jl. Alun-Alun Utara, Kraton, Yogyakarta",
			Hours:           "08:00 - 13:00",
			HistoricalValue: "Tempat para abdi dalem menghadap Sultan dalam upacara resmi kerajaan.",
			Price:           price(10000),
		},
		{
			ID:              "KRT-04",
			Name:            "Sitihinggil Lor",
			Description:     "Balairung di atas tanah yang ditinggikan, tempat gamelan monggang ditabuh pada upacara penobatan.",
			Image:           "/images/sitihinggil-lor.jpg",
			Location:        "Alun-Alun Utara, Kraton, Yogyakarta",
			Hours:           "08:00 - 13:00",
			HistoricalValue: "Lokasi penobatan Sultan sejak abad ke-18.",
		},
		{
			ID:              "KRT-05",
			Name:            "Kagungan Dalem Bangsal Kasatriyan",
			Description:     "Tempat latihan tari dan gamelan bagi para pangeran. Pertunjukan wayang orang digelar setiap Minggu.",
			Image:           "/images/kasatriyan.jpg",
			Location:        "Kompleks Kasatriyan, Kraton, Yogyakarta",
			Hours:           "09:00 - 12:00",
			HistoricalValue: "Dahulu menjadi kediaman para putra Sultan yang sedang menempuh pendidikan.",
			Price:           price(20000),
		},
		{
			ID:              "KRT-06",
			Name:            "Masjid Gedhe Kauman",
			Description:     "Masjid agung keraton tempat gamelan sekaten dimainkan selama sepekan menjelang Grebeg Maulud.",
			Image:           "/images/masjid-gedhe.jpg",
			Location:        "Jl. Kauman, Ngupasan, Yogyakarta",
			Hours:           "24 jam",
			HistoricalValue: "Didirikan tahun 1773 dan menjadi pusat tradisi sekaten di Yogyakarta.",
		},
	}
}
