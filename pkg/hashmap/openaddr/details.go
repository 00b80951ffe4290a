package openaddr

/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions. The table size is always a prime
	number and the load factor is kept below one half, which together guarantee that the
	probe sequence visits enough distinct slots to find a free one. More information about
	the technique can be found here: https://en.wikipedia.org/wiki/Quadratic_probing
	The basic principal is:
	-----------------------
	1) Calculate the hash value of the key and the initial index i0 = hash % capacity
	2) The j-th probe (j = 1, 2, ...) looks at (i0 + j*j) % capacity
	3) Every slot is either empty, occupied or a tombstone. Removing an entry turns the
	   slot into a tombstone instead of emptying it, so that keys inserted later along the
	   same probe sequence can still be reached
	4) Lookups stop at the matching live entry or at the first empty slot; they walk over
	   tombstones
	5) Inserts of a new key write into the first empty slot or tombstone on the sequence
	6) Growing rebuilds the table at the next prime >= twice the capacity and drops every
	   tombstone
*/
