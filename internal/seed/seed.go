// Package seed holds the canonical catalogs every state document starts from.
package seed

import (
	"time"

	"github.com/julianstephens/bidaya/internal/models"
)

// SchemaVersion is the document version produced by Default
const SchemaVersion = 1

var tasks = []models.Task{
	{ID: "t1", Title: "Adab Bangun Tidur", Arabic: "آداب الاستيقاظ من النوم", Description: "Hendaknya engkau bangun sebelum terbit fajar. Saat terbangun, segera berdzikir kepada Allah dan bersyukur karena Dia telah menghidupkanmu kembali. Niatkan untuk menggunakan hari ini dalam ketaatan.", TimeOfDay: models.Morning},
	{ID: "t2", Title: "Adab Masuk Kamar Kecil", Arabic: "آداب دخول الخلاء", Description: "Dahulukan kaki kiri saat masuk dan kaki kanan saat keluar. Jangan membawa sesuatu yang bertuliskan nama Allah. Beristinjalah dengan sempurna dan jagalah kebersihan.", TimeOfDay: models.Morning},
	{ID: "t3", Title: "Adab Wudhu", Arabic: "آداب الوضوء", Description: "Jangan sekadar membasuh anggota tubuh, tapi hadirkan hati. Mulailah dengan Bismillah, bersiwak, dan sempurnakan basuhan. Ingatlah bahwa wudhu membersihkan dosa-dosa kecil.", TimeOfDay: models.Morning},
	{ID: "t4", Title: "Adab Pergi ke Masjid", Arabic: "آداب الخروج إلى المسجد", Description: "Berjalanlah dengan tenang (sakinah) dan wibawa (waqar). Jangan tergesa-gesa. Berdoalah sepanjang perjalanan menuju rumah Allah.", TimeOfDay: models.Morning},
	{ID: "t5", Title: "Adab Masuk Masjid", Arabic: "آداب دخول المسجد", Description: "Masuklah dengan kaki kanan, lalu shalat Tahiyatul Masjid dua rakaat sebelum duduk. Niatkan i'tikaf selama berada di dalamnya.", TimeOfDay: models.Morning},
	{ID: "t6", Title: "Adab Setelah Terbit Matahari", Arabic: "آداب ما بعد طلوع الشمس", Description: "Jangan habiskan waktumu dengan sia-sia. Gunakan untuk menuntut ilmu yang bermanfaat, berdzikir, atau membantu sesama muslim. Hindari perdebatan dan permusuhan.", TimeOfDay: models.Afternoon},
	{ID: "t7", Title: "Persiapan Shalat", Arabic: "الاستعداد لسائر الصلوات", Description: "Bersiaplah sebelum waktu shalat tiba. Sempurnakan wudhu dan pakaianmu. Shalatlah di awal waktu secara berjamaah, karena itu adalah sebaik-baik amalan.", TimeOfDay: models.Afternoon},
	{ID: "t8", Title: "Adab Shalat", Arabic: "آداب الصلاة", Description: "Shalatlah dengan khusyuk, seakan-akan engkau melihat Allah. Jika tidak mampu, yakinlah bahwa Allah melihatmu. Jangan menoleh atau memikirkan hal duniawi.", TimeOfDay: models.Evening},
	{ID: "t9", Title: "Adab Hari Jumat", Arabic: "آداب الجمعة", Description: "Hari Jumat adalah hari raya mingguan. Mandilah, pakai wangi-wangian, berangkat lebih awal ke masjid, dan perbanyak shalawat serta membaca surat Al-Kahfi.", TimeOfDay: models.Evening},
	{ID: "t10", Title: "Adab Tidur", Arabic: "آداب النوم", Description: "Tidurlah dalam keadaan suci (berwudhu). Menghadap kiblat (miring ke kanan). Bacalah doa dan ayat kursi. Niatkan bangun malam untuk Tahajud.", TimeOfDay: models.Night},
}

var bodyScans = []models.BodyPartScan{
	{ID: "b1", Part: "Mata", Arabic: "العين"},
	{ID: "b2", Part: "Telinga", Arabic: "الأذن"},
	{ID: "b3", Part: "Lisan", Arabic: "اللسان"},
	{ID: "b4", Part: "Perut", Arabic: "البطن"},
	{ID: "b5", Part: "Kemaluan", Arabic: "الفرج"},
	{ID: "b6", Part: "Tangan", Arabic: "اليد"},
	{ID: "b7", Part: "Kaki", Arabic: "الرجل"},
}

// Heart disease ids. HasadID also drives the envy warning.
const (
	HasadID = "h1"
	RiyaID  = "h2"
	UjubID  = "h3"
)

var heartDiseases = []models.HeartDisease{
	{ID: HasadID, Name: "Hasad (Dengki)", Arabic: "الحسد", Level: 1, Description: "Menginginkan hilangnya nikmat dari orang lain."},
	{ID: RiyaID, Name: "Riya' (Pamer)", Arabic: "الرياء", Level: 1, Description: "Beramal untuk dilihat dan dipuji manusia."},
	{ID: UjubID, Name: "Ujub (Bangga Diri)", Arabic: "العجب", Level: 1, Description: "Merasa kagum pada diri sendiri dan melupakan karunia Allah."},
}

var wiridLogs = []models.WiridLog{
	{ID: "w1", Name: "Istighfar", Arabic: "أَسْتَغْفِرُ ٱللَّهَ", Description: "Memohon ampunan kepada Allah SWT atas segala dosa dan khilaf.", Target: 100},
	{ID: "w2", Name: "Shalawat", Arabic: "ٱللَّٰهُمَّ صَلِّ عَلَىٰ مُحَمَّدٍ", Description: "Bershalawat kepada Nabi Muhammad SAW sebagai tanda cinta dan penghormatan.", Target: 100},
	{ID: "w3", Name: "Tahlil", Arabic: "لَا إِلَٰهَ إِلَّا ٱللَّهُ", Description: "Kalimat tauhid yang menegaskan tiada Tuhan selain Allah.", Target: 100},
}

var networkProtocols = []models.NetworkProtocol{
	{ID: "np1", Category: models.Vertical, Target: models.TargetAllah, Title: "Khusyu' (Fokus)", Arabic: "الخشوع", Description: "Menghadirkan hati dan merasa rendah diri di hadapan Allah dalam setiap ibadah."},
	{ID: "np2", Category: models.Vertical, Target: models.TargetAllah, Title: "Tawakkal (Berserah)", Arabic: "التوكل", Description: "Menyerahkan segala urusan kepada Allah setelah berusaha maksimal."},
	{ID: "np3", Category: models.Horizontal, Target: models.TargetParents, Title: "Birrul Walidain", Arabic: "بر الوالدين", Description: "Berbuat baik, berkata lembut, dan tidak membantah orang tua."},
	{ID: "np4", Category: models.Horizontal, Target: models.TargetScholars, Title: "Ta'zim (Memuliakan)", Arabic: "التعظيم", Description: "Menghormati guru, mendengarkan dengan seksama, dan tidak mendebatnya."},
	{ID: "np5", Category: models.Horizontal, Target: models.TargetGeneral, Title: "Tawadhu (Rendah Hati)", Arabic: "التواضع", Description: "Tidak merasa lebih baik dari orang lain dan menebarkan salam."},
	{ID: "np6", Category: models.Horizontal, Target: models.TargetIgnorant, Title: "Tarkul Mira' (Hindari Debat)", Arabic: "ترك المراء", Description: "Menghindari perdebatan yang tidak bermanfaat, terutama dengan orang bodoh."},
}

// DefaultStats is the starting progress of a new user
func DefaultStats() models.UserStats {
	return models.UserStats{Level: 1}
}

// Default returns a fully populated first-run state. Every call returns
// fresh slices with the same ids in the same order.
func Default(now time.Time) models.AppState {
	stamp := now.UTC().Format(time.RFC3339)
	wirid := make([]models.WiridLog, len(wiridLogs))
	for i, w := range wiridLogs {
		w.LastUpdated = stamp
		wirid[i] = w
	}

	stats := DefaultStats()
	return models.AppState{
		SchemaVersion:    SchemaVersion,
		Tasks:            append([]models.Task(nil), tasks...),
		BodyScans:        append([]models.BodyPartScan(nil), bodyScans...),
		HeartDiseases:    append([]models.HeartDisease(nil), heartDiseases...),
		WiridLogs:        wirid,
		NetworkProtocols: append([]models.NetworkProtocol(nil), networkProtocols...),
		TodayPrayer:      nil,
		PrayerStats:      []models.PrayerLog{},
		UserStats:        &stats,
	}
}

// Catalog ids in seed order
type Catalog struct {
	Tasks            []string
	BodyScans        []string
	HeartDiseases    []string
	WiridLogs        []string
	NetworkProtocols []string
}

// IDs returns the fixed id set of every catalog
func IDs() Catalog {
	var c Catalog
	for _, t := range tasks {
		c.Tasks = append(c.Tasks, t.ID)
	}
	for _, b := range bodyScans {
		c.BodyScans = append(c.BodyScans, b.ID)
	}
	for _, h := range heartDiseases {
		c.HeartDiseases = append(c.HeartDiseases, h.ID)
	}
	for _, w := range wiridLogs {
		c.WiridLogs = append(c.WiridLogs, w.ID)
	}
	for _, p := range networkProtocols {
		c.NetworkProtocols = append(c.NetworkProtocols, p.ID)
	}
	return c
}
