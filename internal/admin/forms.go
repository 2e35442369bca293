package admin

// Form structs hold raw string input exactly as posted; conversion to typed
// payloads happens at submit so a failed parse never loses what was typed.

type DosenForm struct {
	NamaDosen string
	UIDKartu  string
}

type MataKuliahForm struct {
	KodeMatkul string
	NamaMatkul string
}

type JadwalForm struct {
	IDDosen    string
	IDMatkul   string
	Tanggal    string
	JamMulai   string
	JamSelesai string
}

type IzinForm struct {
	IDJadwal   string
	Tanggal    string
	Jenis      string
	Keterangan string
}

type AbsensiForm struct {
	IDJadwal        string
	UIDKartu        string
	WaktuMasuk      string
	WaktuKeluar     string
	StatusKehadiran string
	Keterangan      string
}
