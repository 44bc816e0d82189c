package crypto

// KeyChain отвечает за весь ключевой материал парольной схемы шифрования.
// Он не знает ничего о файлах, контейнерах или каталогах.
// Его единственная задача — превратить пароль в ключ.
//
// Схема работы:
//
//	Salt     = GenerateSalt()                    (Шаг 1, только шифрование)
//	Key, IV  = DeriveKey(password, salt)         (Шаг 2)
type KeyChain interface {
	// GenerateSalt генерирует случайную соль (16 байт / 128 бит).
	// Соль не является секретом — она хранится в контейнере открыто.
	// Нужна для того, чтобы одинаковые пароли давали разные ключи.
	// Шаг 1.
	GenerateSalt() ([]byte, error)

	// DeriveKey выводит ключ AES-256 (32 байта) и вектор инициализации CBC
	// (16 байт) из пароля и соли через scrypt. Детерминирован: одинаковые
	// (password, salt) всегда дают одинаковые (key, iv) — на этом держится
	// расшифровка. IV не хранится в контейнере, а выводится заново.
	// Шаг 2.
	DeriveKey(password string, salt []byte) (key, iv []byte, err error)
}

// Cipher performs the AES-256-CBC transformation over a whole in-memory
// payload. Plaintext length is arbitrary; PKCS#7 padding is applied on
// encryption and validated on decryption.
type Cipher interface {
	// Encrypt pads plaintext with PKCS#7 and encrypts it with AES-256-CBC
	// under the given key and IV.
	Encrypt(plaintext, key, iv []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Returns ErrInvalidPadding when the recovered
	// padding bytes are structurally invalid, which signals a wrong key or
	// corruption; callers fold it into their authentication failure.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}
